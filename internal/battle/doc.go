// Package battle runs a fixed number of rounds between two competitors.
//
// # Lifecycle
//
// A battle moves through three states:
//
//   - NotStarted: created, no round played yet
//   - InProgress: at least one round played
//   - Finished: every configured round played and the result announced
//
// Each call to [Battle.Step] plays exactly one round: the challenger drops
// a line, the opponent answers, the judge scores both, and the winner of
// the round (if any) gets one point. [Battle.Run] steps until the battle is
// finished. Once started a battle always runs to the end; all validation
// happens in [New].
//
// # Reporting
//
// The battle never formats output itself. Progress goes to a [Reporter],
// which can print to a terminal, drive a live view, or publish to an
// [event.Bus]. Round results are handed to the reporter and then dropped;
// only the running tallies are kept.
//
// # Usage
//
//	src := random.New(seed)
//	a, b, err := roster.Default().Draw(src)
//	if err != nil {
//	    return err
//	}
//	bt, err := battle.New(a, b, battle.Config{
//	    Rounds:   battle.DefaultRounds,
//	    Lines:    src,
//	    Judge:    judge.New(src),
//	    Reporter: reporter,
//	})
//	if err != nil {
//	    return err
//	}
//	result := bt.Run()
package battle
