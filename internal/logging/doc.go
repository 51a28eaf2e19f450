// Package logging provides structured logging for rapbattle.
//
// It wraps Go's log/slog package to write JSON lines either to a
// battle.log file inside a configured directory or to stderr. Logging is
// off by default; the root command swaps in [NopLogger] unless
// logging.enabled is set.
//
// # Usage
//
//	logger, err := logging.NewLogger("/tmp/rapbattle", "DEBUG")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	battleLogger := logger.WithBattle(b.ID())
//	battleLogger.Info("battle finished", "winner", "MC Flow")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"battle finished","battle_id":"6f1c...","winner":"MC Flow"}
//
// # Testing
//
// Use [NopLogger] to discard all log output.
package logging
