package catalog

var materialBank = map[Goal][]Material{
	GoalMath: {
		{
			Title:  "Factoring Quadratic Equations",
			Source: "Khan Academy - Interactive",
			Type:   "Interactive",
			URL:    "https://www.khanacademy.org/math/algebra/x2f8bb11595b61c86:quadratics-multiplying-factoring/x2f8bb11595b61c86:factor-quadratics-strategy/v/factoring-quadratics-in-any-form",
			Videos: []Video{
				{Title: "How To Factor Trinomials Step By Step", URL: "https://www.youtube.com/watch?v=s_6n_eO-zEo"},
				{Title: "Factoring quadratics intro | Khan Academy", URL: "https://www.youtube.com/watch?v=qe5C_y61_Jc"},
			},
		},
		{
			Title:  "Probability Theory Basics",
			Source: "Wikipedia - Article",
			Type:   "Article",
			URL:    "https://en.wikipedia.org/wiki/Probability_theory",
			Videos: []Video{
				{Title: "Math Antics - Basic Probability", URL: "https://www.youtube.com/watch?v=K34T4l00_o4"},
				{Title: "Probability - Tree Diagrams 1", URL: "https://www.youtube.com/watch?v=c5w93T63M3Y"},
			},
		},
		{
			Title:  "The Pythagorean Theorem",
			Source: "Math is Fun - Article",
			Type:   "Article",
			URL:    "https://www.mathsisfun.com/pythagoras.html",
			Videos: []Video{
				{Title: "The Pythagorean theorem intro | Khan Academy", URL: "https://www.youtube.com/watch?v=Pyh_gAS_eQA"},
				{Title: "What is Pythagoras' theorem? | The Dr. Binocs Show", URL: "https://www.youtube.com/watch?v=O64-A90_f_4"},
			},
		},
		{
			Title:  "Solving Trigonometric Equations",
			Source: "Brilliant.org - Interactive",
			Type:   "Interactive",
			URL:    "https://brilliant.org/wiki/solving-trigonometric-equations/",
			Videos: []Video{
				{Title: "Solving Trig Equations | The Organic Chemistry Tutor", URL: "https://www.youtube.com/watch?v=2mO_b_e07p4"},
				{Title: "Solving Trigonometric Equations - General Solution", URL: "https://www.youtube.com/watch?v=kEcbxiLeG_c"},
			},
		},
	},
	GoalHistory: {
		{
			Title:  "The Second World War",
			Source: "Khan Academy - Course",
			Type:   "Course",
			URL:    "https://www.khanacademy.org/humanities/us-history/rise-to-world-power/us-wwii",
			Videos: []Video{
				{Title: "World War II: Crash Course US History #35", URL: "https://www.youtube.com/watch?v=Objoad6rG6U"},
				{Title: "World War II - OverSimplified (Part 1)", URL: "https://www.youtube.com/watch?v=spw5o-C4I1M"},
			},
		},
		{
			Title:  "The Roman Empire",
			Source: "Wikipedia - Article",
			Type:   "Article",
			URL:    "https://en.wikipedia.org/wiki/Roman_Empire",
			Videos: []Video{
				{Title: "The Roman Empire...: Crash Course World History #10", URL: "https://www.youtube.com/watch?v=oPf27gAup9U"},
				{Title: "The Rise and Fall of the Roman Empire | The History Channel", URL: "https://www.youtube.com/watch?v=Ee_F_42GvD4"},
			},
		},
		{
			Title:  "Ancient Egypt",
			Source: "History.com - Topic",
			Type:   "Article",
			URL:    "https://www.history.com/topics/ancient-egypt/ancient-egyptian-civilization",
			Videos: []Video{
				{Title: "Ancient Egypt 101 | National Geographic", URL: "https://www.youtube.com/watch?v=hO1tzmi1V5g"},
				{Title: "The Ancient Egypt - 5 things you should know", URL: "https://www.youtube.com/watch?v=ssB-5fS_Jb4"},
			},
		},
	},
	GoalScience: {
		{
			Title:  "Photosynthesis",
			Source: "Khan Academy - Course",
			Type:   "Course",
			URL:    "https://www.khanacademy.org/science/biology/photosynthesis-in-plants",
			Videos: []Video{
				{Title: "Photosynthesis: Crash Course Biology #8", URL: "https://www.youtube.com/watch?v=sQK3Yr4Sc_k"},
				{Title: "Travel Deep Inside a Leaf | California Academy of Sciences", URL: "https://www.youtube.com/watch?v=g78utcLQrJ4"},
			},
		},
		{
			Title:  "Theory of General Relativity",
			Source: "Space.com - Article",
			Type:   "Article",
			URL:    "https://www.space.com/17661-theory-general-relativity.html",
			Videos: []Video{
				{Title: "What Is General Relativity? | PBS Space Time", URL: "https://www.youtube.com/watch?v=DYq774z4dws"},
				{Title: "General Relativity Explained in 7 Levels of Difficulty | WIRED", URL: "https://www.youtube.com/watch?v=A_Jo_14i_sA"},
			},
		},
		{
			Title:  "Cellular Respiration",
			Source: "Wikipedia - Article",
			Type:   "Article",
			URL:    "https://en.wikipedia.org/wiki/Cellular_respiration",
			Videos: []Video{
				{Title: "Cellular Respiration (UPDATED) | Amoeba Sisters", URL: "https://www.youtube.com/watch?v=4Eo7JtQlgq4"},
				{Title: "ATP & Respiration: Crash Course Biology #7", URL: "https://www.youtube.com/watch?v=00jbG_cfGuQ"},
			},
		},
	},
	GoalWeb: {
		{
			Title:  "HTML Full Course for Beginners",
			Source: "freeCodeCamp - Tutorial",
			Type:   "Tutorial",
			URL:    "https://www.freecodecamp.org/news/html-full-course-for-beginners/",
			Videos: []Video{
				{Title: "HTML Crash Course For Absolute Beginners | Traversy Media", URL: "https://www.youtube.com/watch?v=kUMe1FH4CHE"},
				{Title: "HTML Full Course - Build a Website Tutorial | freeCodeCamp.org", URL: "https://www.youtube.com/watch?v=pQN-pnXPaVg"},
			},
		},
		{
			Title:  "CSS Tutorial – Full Course for Beginners",
			Source: "freeCodeCamp - Tutorial",
			Type:   "Tutorial",
			URL:    "https://www.freecodecamp.org/news/css-tutorial-full-course-for-beginners/",
			Videos: []Video{
				{Title: "CSS Crash Course For Absolute Beginners | Traversy Media", URL: "https://www.youtube.com/watch?v=yfoY53QXEnI"},
				{Title: "CSS Full Course | freeCodeCamp.org", URL: "https://www.youtube.com/watch?v=1Rs2ND1ryYc"},
			},
		},
		{
			Title:  "JavaScript Tutorial for Beginners",
			Source: "javascript.info - Course",
			Type:   "Course",
			URL:    "https://javascript.info/",
			Videos: []Video{
				{Title: "Learn JavaScript - Full Course for Beginners | freeCodeCamp.org", URL: "https://www.youtube.com/watch?v=PkZNo7MFNFg"},
				{Title: "JavaScript Tutorial for Beginners | Mosh Hamedani", URL: "https://www.youtube.com/watch?v=W6NZfCO5eDE"},
			},
		},
		{
			Title:  "React Official Tutorial",
			Source: "react.dev - Docs",
			Type:   "Docs",
			URL:    "https://react.dev/learn",
			Videos: []Video{
				{Title: "React Tutorial for Beginners | Mosh Hamedani", URL: "https://www.youtube.com/watch?v=bMknfKXIFA8"},
				{Title: "React Course For Beginners | freeCodeCamp.org", URL: "https://www.youtube.com/watch?v=SqcY0GlETPk"},
			},
		},
	},
}
