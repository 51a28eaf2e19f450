package roster

// Default returns the built-in roster. Each call builds fresh competitors
// with zero scores.
func Default() Roster {
	return Roster{
		NewCompetitor("MC Flow", "Smooth Flow", []string{
			"I'm the lyrical miracle, spitting vernacular, my flow so spectacular",
			"Rhythm in my veins, poetry in my brain, I bring the heat like a flame",
			"Words like weapons, bars like blessing, teaching you a lesson",
			"I'm the architect of rhyme, building verses all the time",
			"Microphone controller, hip-hop soldier, getting bolder as I get older",
		}),
		NewCompetitor("Rhythm King", "Hard Hitting", []string{
			"I'm the king on this throne, ruling the zone, with a style all my own",
			"Beats drop heavy, I stay ready, flow so steady like confetti",
			"Crushing competition with my lyrical ammunition and precision",
			"Born to reign, can't contain, the power in my brain",
			"I'm the definition of ambition, on a lyrical mission",
		}),
		NewCompetitor("Lyric Ace", "Wordplay Master", []string{
			"I flip words like acrobatics, my style's automatic, so dramatic",
			"Metaphors and similes, creating lyrical symphonies with ease",
			"I'm painting pictures with my diction, pure linguistic fiction",
			"Rhyme schemes so complex, leaving rappers perplexed",
			"Vocabulary vast, I'm rapping fast, built to last",
		}),
		NewCompetitor("Beat Boxer", "Rhythmic Genius", []string{
			"Boom bap boom, I light up the room, sealing your doom",
			"Percussion in my mouth, going south to north, bringing forth the force",
			"I'm the human drum machine, keeping it clean, know what I mean",
			"Beatboxing and rapping, multitasking, no asking, I'm everlasting",
			"Rhythm is my language, speaker of savage, lyrical advantage",
		}),
	}
}
