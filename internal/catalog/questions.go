package catalog

var questionBank = map[Goal][]Question{
	GoalMath: {
		{
			Text:         "What is the value of 8 x 3?",
			Answers:      []string{"18", "21", "24", "27"},
			CorrectIndex: 2,
			Topic:        "Algebra Basics",
			Tags:         []string{"NeedSuns", "Medluns"},
		},
		{
			Text:         "What is the square root of 144?",
			Answers:      []string{"10", "11", "12", "13"},
			CorrectIndex: 2,
			Topic:        "Basic Arithmetic",
			Tags:         []string{"NeedSuns", "Roots"},
		},
		{
			Text:         "Solve for x: 2x + 5 = 15",
			Answers:      []string{"3", "5", "7", "10"},
			CorrectIndex: 1,
			Topic:        "Simple Equations",
			Tags:         []string{"Medluns", "Algebra"},
		},
		{
			Text:         "A triangle has angles 45°, 45°, and x. What is x?",
			Answers:      []string{"45°", "90°", "180°", "60°"},
			CorrectIndex: 1,
			Topic:        "Geometry",
			Tags:         []string{"Angles", "Triangles"},
		},
		{
			Text:         "What is 20% of 300?",
			Answers:      []string{"40", "50", "60", "70"},
			CorrectIndex: 2,
			Topic:        "Percentages",
			Tags:         []string{"Math", "Basics"},
		},
		{
			Text:         "If a car travels 180 miles in 3 hours, what is its average speed?",
			Answers:      []string{"50 mph", "60 mph", "70 mph", "90 mph"},
			CorrectIndex: 1,
			Topic:        "Rates",
			Tags:         []string{"Speed", "Math"},
		},
		{
			Text:         "What is the next number in the sequence: 2, 5, 11, 23, ...?",
			Answers:      []string{"47", "46", "34", "42"},
			CorrectIndex: 0,
			Topic:        "Number Series",
			Tags:         []string{"Logic", "Patterns"},
		},
		{
			Text:         "What is the area of a circle with a radius of 5 units?",
			Answers:      []string{"10π", "25π", "5π", "100π"},
			CorrectIndex: 1,
			Topic:        "Geometry",
			Tags:         []string{"Circles", "Area"},
		},
		{
			Text:         "Simplify the fraction 12/30.",
			Answers:      []string{"2/5", "3/7", "4/10", "1/3"},
			CorrectIndex: 0,
			Topic:        "Fractions",
			Tags:         []string{"Simplifying", "Basics"},
		},
		{
			Text:         "What is 3/4 as a decimal?",
			Answers:      []string{"0.34", "0.75", "0.25", "3.4"},
			CorrectIndex: 1,
			Topic:        "Fractions & Decimals",
			Tags:         []string{"Basics", "Conversion"},
		},
	},
	GoalHistory: {
		{
			Text:         "Who was the first President of the United States?",
			Answers:      []string{"Thomas Jefferson", "Abraham Lincoln", "George Washington", "John Adams"},
			CorrectIndex: 2,
			Topic:        "US History",
			Tags:         []string{"Presidents", "Founding Fathers"},
		},
		{
			Text:         "In which year did World War II end?",
			Answers:      []string{"1943", "1945", "1950", "1939"},
			CorrectIndex: 1,
			Topic:        "World History",
			Tags:         []string{"WWII", "20th Century"},
		},
		{
			Text:         "The ancient pyramids are located in which country?",
			Answers:      []string{"Greece", "Mexico", "Egypt", "Italy"},
			CorrectIndex: 2,
			Topic:        "Ancient Civilizations",
			Tags:         []string{"Egypt", "Pyramids"},
		},
		{
			Text:         "The Renaissance began in which European country?",
			Answers:      []string{"France", "Spain", "England", "Italy"},
			CorrectIndex: 3,
			Topic:        "European History",
			Tags:         []string{"Renaissance", "Art History"},
		},
		{
			Text:         "Who wrote the 'Declaration of Independence'?",
			Answers:      []string{"George Washington", "Thomas Jefferson", "Benjamin Franklin", "John Hancock"},
			CorrectIndex: 1,
			Topic:        "US History",
			Tags:         []string{"American Revolution", "Documents"},
		},
		{
			Text:         "The Magna Carta was signed in what year?",
			Answers:      []string{"1066", "1215", "1492", "1776"},
			CorrectIndex: 1,
			Topic:        "Medieval History",
			Tags:         []string{"England", "Law"},
		},
		{
			Text:         "Who was the leader of the Soviet Union during the Cuban Missile Crisis?",
			Answers:      []string{"Vladimir Lenin", "Joseph Stalin", "Nikita Khrushchev", "Mikhail Gorbachev"},
			CorrectIndex: 2,
			Topic:        "Cold War",
			Tags:         []string{"USSR", "20th Century"},
		},
		{
			Text:         "The city of Constantinople is known today by what name?",
			Answers:      []string{"Athens", "Rome", "Ankara", "Istanbul"},
			CorrectIndex: 3,
			Topic:        "Byzantine Empire",
			Tags:         []string{"Cities", "Turkey"},
		},
		{
			Text:         "Which empire was ruled by Genghis Khan?",
			Answers:      []string{"Ottoman Empire", "Roman Empire", "Mongol Empire", "Persian Empire"},
			CorrectIndex: 2,
			Topic:        "Asian History",
			Tags:         []string{"Mongols", "Conquerors"},
		},
		{
			Text:         "What event triggered the start of World War I?",
			Answers:      []string{"Invasion of Poland", "Bombing of Pearl Harbor", "Assassination of Archduke Franz Ferdinand", "The sinking of the Lusitania"},
			CorrectIndex: 2,
			Topic:        "World History",
			Tags:         []string{"WWI", "20th Century"},
		},
	},
	GoalScience: {
		{
			Text:         "What is the chemical symbol for water?",
			Answers:      []string{"O2", "H2O", "CO2", "NaCl"},
			CorrectIndex: 1,
			Topic:        "Chemistry",
			Tags:         []string{"Molecules", "Basics"},
		},
		{
			Text:         "Which planet is known as the Red Planet?",
			Answers:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
			CorrectIndex: 1,
			Topic:        "Astronomy",
			Tags:         []string{"Solar System", "Planets"},
		},
		{
			Text:         "What is the powerhouse of the cell?",
			Answers:      []string{"Nucleus", "Ribosome", "Mitochondrion", "Cell Wall"},
			CorrectIndex: 2,
			Topic:        "Biology",
			Tags:         []string{"Cells", "Organelles"},
		},
		{
			Text:         "What force pulls objects towards the center of the Earth?",
			Answers:      []string{"Magnetism", "Friction", "Tension", "Gravity"},
			CorrectIndex: 3,
			Topic:        "Physics",
			Tags:         []string{"Forces", "Gravity"},
		},
		{
			Text:         "What process do plants use to make their own food?",
			Answers:      []string{"Respiration", "Transpiration", "Photosynthesis", "Germination"},
			CorrectIndex: 2,
			Topic:        "Biology",
			Tags:         []string{"Plants", "Photosynthesis"},
		},
		{
			Text:         "What does DNA stand for?",
			Answers:      []string{"Deoxyribonucleic Acid", "Denitro Acid", "Deoxyribo Nutrient Acid", "Dinucleic Acid"},
			CorrectIndex: 0,
			Topic:        "Genetics",
			Tags:         []string{"Biology", "DNA"},
		},
		{
			Text:         "What is the speed of light?",
			Answers:      []string{"300,000 km/s", "150,000 km/s", "500,000 km/s", "1,000,000 km/s"},
			CorrectIndex: 0,
			Topic:        "Physics",
			Tags:         []string{"Light", "Constants"},
		},
		{
			Text:         "Which of these is not a state of matter?",
			Answers:      []string{"Solid", "Liquid", "Gas", "Plasma", "Ink"},
			CorrectIndex: 4,
			Topic:        "Chemistry",
			Tags:         []string{"States of Matter", "Basics"},
		},
		{
			Text:         "What is the hardest natural substance on Earth?",
			Answers:      []string{"Gold", "Iron", "Diamond", "Quartz"},
			CorrectIndex: 2,
			Topic:        "Geology",
			Tags:         []string{"Minerals", "Materials"},
		},
		{
			Text:         "How many bones are in the adult human body?",
			Answers:      []string{"206", "212", "300", "198"},
			CorrectIndex: 0,
			Topic:        "Anatomy",
			Tags:         []string{"Biology", "Human Body"},
		},
	},
	GoalWeb: {
		{
			Text:         "What does HTML stand for?",
			Answers:      []string{"HyperText Markup Language", "Hyperlink and Text Markup Language", "Home Tool Markup Language", "Hyperlinking Textual MARKUP Language"},
			CorrectIndex: 0,
			Topic:        "Web Fundamentals",
			Tags:         []string{"HTML", "Basics"},
		},
		{
			Text:         "Which CSS property is used to change the text color of an element?",
			Answers:      []string{"font-color", "text-color", "color", "background-color"},
			CorrectIndex: 2,
			Topic:        "CSS",
			Tags:         []string{"Styling", "CSS"},
		},
		{
			Text:         "Which tag is used to define an unordered list in HTML?",
			Answers:      []string{"<list>", "<li>", "<ol>", "<ul>"},
			CorrectIndex: 3,
			Topic:        "HTML",
			Tags:         []string{"Lists", "HTML"},
		},
		{
			Text:         "In JavaScript, how do you declare a constant variable?",
			Answers:      []string{"var", "let", "const", "constant"},
			CorrectIndex: 2,
			Topic:        "JavaScript",
			Tags:         []string{"Variables", "ES6"},
		},
		{
			Text:         "What is the correct syntax for referring to an external script called 'app.js'?",
			Answers:      []string{"<script href='app.js'>", "<script name='app.js'>", "<script src='app.js'>", "<script file='app.js'>"},
			CorrectIndex: 2,
			Topic:        "JavaScript",
			Tags:         []string{"HTML", "Scripts"},
		},
		{
			Text:         "What does 'git clone' do?",
			Answers:      []string{"Deletes a repository", "Creates a new repository", "Creates a copy of an existing repository", "Lists all repositories"},
			CorrectIndex: 2,
			Topic:        "Version Control",
			Tags:         []string{"Git", "Basics"},
		},
		{
			Text:         "What is an API?",
			Answers:      []string{"Advanced Programming Interface", "Application Programming Interface", "Automated Program Interaction", "Application Process Integration"},
			CorrectIndex: 1,
			Topic:        "Web Concepts",
			Tags:         []string{"API", "Backend"},
		},
		{
			Text:         "In CSS, what is the 'box model'?",
			Answers:      []string{"A model for 3D shapes", "A layout model for HTML elements", "A type of JavaScript framework", "A color selection tool"},
			CorrectIndex: 1,
			Topic:        "CSS",
			Tags:         []string{"Layout", "Box Model"},
		},
		{
			Text:         "What data type would you use for 'true' or 'false' in JavaScript?",
			Answers:      []string{"String", "Number", "Boolean", "Object"},
			CorrectIndex: 2,
			Topic:        "JavaScript",
			Tags:         []string{"Data Types", "Basics"},
		},
		{
			Text:         "Which HTTP method is typically used to request data from a server?",
			Answers:      []string{"POST", "GET", "DELETE", "PUT"},
			CorrectIndex: 1,
			Topic:        "Web Concepts",
			Tags:         []string{"HTTP", "Network"},
		},
	},
}
