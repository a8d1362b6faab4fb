package catalog

// allLevels returns the full seven-level OPIC content table.
func allLevels() []Level {
	return []Level{
		{
			Code:         "IM1",
			Name:         "Intermediate Mid 1",
			Description:  "Basic daily conversations and routine situations",
			PassingScore: PassingScore,
			Color:        "#4CAF50",
			Topics: []string{
				"Daily Routines", "Family & Friends", "Food & Dining", "Shopping",
				"Transportation", "Weather", "Hobbies", "Work/School Basic",
				"Health & Body", "Home & Living", "Past Events", "Future Plans",
			},
			GrammarFocus: []string{
				"Present Simple vs Present Continuous",
				"Past Simple vs Present Perfect",
				"Basic Future forms (will/going to)",
				"Comparative and Superlative",
				"Modal verbs (can/could/should)",
				"Prepositions of time and place",
				"Question formation (WH-questions)",
				"Frequency adverbs",
				"There is/are constructions",
				"Basic conjunctions (and, but, or)",
				"Simple conditional (if + present)",
				"Possessive adjectives and pronouns",
			},
			VocabularyThemes: []string{
				"Personal information", "Family relationships", "Daily activities",
				"Food and meals", "Shopping items", "Transportation modes",
				"Weather conditions", "Hobbies and interests", "Body parts",
				"Health problems", "Home and furniture", "Time expressions",
			},
			CulturalContexts: []string{
				"Greetings and introductions", "Family customs", "Meal times",
				"Shopping etiquette", "Public transportation", "Weather talk",
				"Leisure activities", "Work schedules", "Healthcare visits",
				"Housing arrangements",
			},
			SpeakingTasks: []string{
				"Describe daily routine", "Talk about family", "Order food",
				"Ask for directions", "Make appointments", "Express preferences",
				"Give personal information", "Talk about past experiences",
				"Make simple plans", "Describe living situation",
			},
			DifficultyIndicators: []string{
				"Simple sentence structures", "Present tense dominant",
				"Concrete vocabulary", "Familiar topics", "Basic time concepts",
				"Simple descriptions", "Personal experiences",
			},
		},
		{
			Code:         "IM2",
			Name:         "Intermediate Mid 2",
			Description:  "Most routine social exchanges with some complications",
			PassingScore: PassingScore,
			Color:        "#2196F3",
			Topics: []string{
				"Travel & Vacations", "Entertainment & Media", "Technology Use",
				"Education & Learning", "Work Situations", "Problem Solving",
				"Opinions & Preferences", "Cultural Events", "Health Issues",
				"Money & Banking", "Relationships", "Current Events Basic",
			},
			GrammarFocus: []string{
				"Present Perfect vs Past Simple",
				"Present Perfect Continuous",
				"Past Continuous vs Past Simple",
				"Used to vs Would",
				"First Conditional",
				"Reported Speech basics",
				"Passive Voice present/past",
				"Relative Clauses (who/which/that)",
				"Modal verbs of possibility",
				"Gerunds vs Infinitives basics",
				"Linking words (because, although)",
				"Future plans and intentions",
			},
			VocabularyThemes: []string{
				"Travel and tourism", "Entertainment industry", "Technology devices",
				"Educational systems", "Workplace terminology", "Problem descriptions",
				"Opinion expressions", "Cultural activities", "Medical conditions",
				"Financial services", "Relationship types", "News and media",
			},
			CulturalContexts: []string{
				"Travel customs", "Entertainment preferences", "Technology adoption",
				"Education systems", "Work environments", "Problem-solving approaches",
				"Opinion sharing", "Cultural celebrations", "Healthcare systems",
				"Banking practices", "Social relationships", "Media consumption",
			},
			SpeakingTasks: []string{
				"Plan a trip", "Discuss entertainment", "Explain technology use",
				"Talk about education", "Describe work experience", "Solve problems",
				"Express opinions", "Discuss cultural events", "Describe health issues",
				"Handle banking", "Talk about relationships", "Discuss current events",
			},
			DifficultyIndicators: []string{
				"More complex sentence structures", "Past tense narratives",
				"Abstract concepts introduction", "Opinion expression",
				"Problem-solution patterns", "Cause-effect relationships",
			},
		},
		{
			Code:         "IM3",
			Name:         "Intermediate Mid 3",
			Description:  "Complex social and work situations",
			PassingScore: PassingScore,
			Color:        "#FF9800",
			Topics: []string{
				"Career Development", "Social Issues", "Environmental Topics",
				"Cultural Differences", "Decision Making", "Problem Analysis",
				"Future Predictions", "Personal Goals", "Lifestyle Changes",
				"Technology Impact", "Education Systems", "Workplace Challenges",
			},
			GrammarFocus: []string{
				"Second Conditional",
				"Present Perfect Continuous",
				"Future Perfect",
				"Passive Voice all tenses",
				"Advanced Relative Clauses",
				"Reported Speech advanced",
				"Gerunds vs Infinitives",
				"Modal verbs of deduction",
				"Complex conjunctions",
				"Cause and effect expressions",
				"Comparison structures",
				"Hypothetical situations",
			},
			VocabularyThemes: []string{
				"Career terminology", "Social problems", "Environmental issues",
				"Cultural concepts", "Decision processes", "Analysis vocabulary",
				"Future trends", "Goal setting", "Lifestyle choices",
				"Technology impact", "Educational methods", "Workplace dynamics",
			},
			CulturalContexts: []string{
				"Career progression", "Social awareness", "Environmental consciousness",
				"Cross-cultural understanding", "Decision-making styles",
				"Analytical thinking", "Future planning", "Personal development",
				"Lifestyle trends", "Technology integration", "Learning approaches",
				"Professional challenges",
			},
			SpeakingTasks: []string{
				"Discuss career plans", "Analyze social issues", "Debate environmental topics",
				"Compare cultures", "Explain decisions", "Analyze problems",
				"Make predictions", "Set goals", "Discuss lifestyle changes",
				"Evaluate technology", "Compare education systems", "Handle workplace issues",
			},
			DifficultyIndicators: []string{
				"Complex sentence structures", "Abstract reasoning",
				"Multiple perspectives", "Analytical thinking",
				"Future speculation", "Comparative analysis",
			},
		},
		{
			Code:         "IH",
			Name:         "Intermediate High",
			Description:  "Unexpected complications and abstract topics",
			PassingScore: PassingScore,
			Color:        "#9C27B0",
			Topics: []string{
				"Abstract Concepts", "Hypothetical Situations", "Complex Problem Solving",
				"Professional Communication", "Academic Topics", "Research & Analysis",
				"Innovation & Change", "Global Issues", "Ethics & Values",
				"Leadership & Management", "Conflict Resolution", "Future Scenarios",
			},
			GrammarFocus: []string{
				"Third Conditional",
				"Mixed Conditionals",
				"Advanced Modal verbs",
				"Inversion structures",
				"Subjunctive mood",
				"Cleft sentences",
				"Advanced Passive constructions",
				"Complex sentence structures",
				"Advanced reported speech",
				"Discourse markers",
				"Emphatic structures",
				"Advanced conjunctions",
			},
			VocabularyThemes: []string{
				"Abstract concepts", "Hypothetical language", "Problem-solving vocabulary",
				"Professional terminology", "Academic language", "Research methods",
				"Innovation concepts", "Global terminology", "Ethical vocabulary",
				"Leadership language", "Conflict resolution", "Future scenarios",
			},
			CulturalContexts: []string{
				"Abstract thinking", "Hypothetical reasoning", "Complex problem solving",
				"Professional environments", "Academic settings", "Research culture",
				"Innovation mindset", "Global perspective", "Ethical considerations",
				"Leadership styles", "Conflict management", "Future planning",
			},
			SpeakingTasks: []string{
				"Discuss abstract ideas", "Handle hypothetical situations", "Solve complex problems",
				"Communicate professionally", "Present academic topics", "Analyze research",
				"Discuss innovation", "Address global issues", "Explore ethics",
				"Demonstrate leadership", "Resolve conflicts", "Plan future scenarios",
			},
			DifficultyIndicators: []string{
				"Abstract conceptualization", "Hypothetical reasoning",
				"Complex argumentation", "Professional discourse",
				"Academic language use", "Sophisticated analysis",
			},
		},
		{
			Code:         "AL",
			Name:         "Advanced Low",
			Description:  "Most situations with confidence and nuanced expressions",
			PassingScore: PassingScore,
			Color:        "#795548",
			Topics: []string{
				"Academic Research", "Professional Presentations", "Complex Negotiations",
				"Policy Analysis", "Scientific Concepts", "Philosophical Ideas",
				"Historical Analysis", "Economic Theories", "Social Psychology",
				"Cross-cultural Communication", "Advanced Technology", "Innovation Management",
			},
			GrammarFocus: []string{
				"Advanced Conditionals",
				"Sophisticated Modal usage",
				"Complex Inversion",
				"Advanced Subjunctive",
				"Nominalization",
				"Advanced Passive structures",
				"Discourse markers",
				"Academic writing structures",
				"Complex clause combinations",
				"Advanced cohesion devices",
				"Sophisticated conjunctions",
				"Register variation",
			},
			VocabularyThemes: []string{
				"Academic terminology", "Professional presentations", "Negotiation language",
				"Policy vocabulary", "Scientific terminology", "Philosophical concepts",
				"Historical analysis", "Economic language", "Psychology terms",
				"Cross-cultural concepts", "Advanced technology", "Innovation management",
			},
			CulturalContexts: []string{
				"Academic environments", "Professional presentations", "Business negotiations",
				"Policy making", "Scientific research", "Philosophical discourse",
				"Historical interpretation", "Economic analysis", "Psychological understanding",
				"Cultural sensitivity", "Technology adoption", "Innovation culture",
			},
			SpeakingTasks: []string{
				"Present research", "Deliver presentations", "Negotiate agreements",
				"Analyze policies", "Explain scientific concepts", "Discuss philosophy",
				"Interpret history", "Analyze economics", "Explore psychology",
				"Navigate cultures", "Evaluate technology", "Manage innovation",
			},
			DifficultyIndicators: []string{
				"Academic discourse", "Professional fluency",
				"Sophisticated argumentation", "Nuanced expression",
				"Complex analysis", "Specialized terminology",
			},
		},
		{
			Code:         "AM",
			Name:         "Advanced Mid",
			Description:  "All routine and most non-routine situations",
			PassingScore: PassingScore,
			Color:        "#607D8B",
			Topics: []string{
				"Specialized Professional Fields", "Advanced Academic Discourse",
				"Complex Problem Analysis", "Strategic Planning", "Research Methodology",
				"Advanced Cultural Analysis", "Sophisticated Argumentation",
				"Expert-level Communication", "Advanced Technical Topics",
				"High-level Negotiations", "Complex Project Management", "Advanced Leadership",
			},
			GrammarFocus: []string{
				"Near-native grammar structures",
				"Sophisticated register variation",
				"Advanced cohesion devices",
				"Complex clause structures",
				"Advanced hedging language",
				"Sophisticated emphasis structures",
				"Advanced reported speech",
				"Complex temporal relationships",
				"Advanced modal combinations",
				"Sophisticated discourse management",
				"Complex nominalization",
				"Advanced stylistic devices",
			},
			VocabularyThemes: []string{
				"Specialized professions", "Advanced academics", "Complex analysis",
				"Strategic terminology", "Research vocabulary", "Cultural analysis",
				"Sophisticated argumentation", "Expert communication", "Technical language",
				"High-level negotiations", "Project management", "Advanced leadership",
			},
			CulturalContexts: []string{
				"Professional specialization", "Academic excellence", "Complex problem solving",
				"Strategic thinking", "Research methodology", "Cultural sophistication",
				"Advanced argumentation", "Expert communication", "Technical proficiency",
				"High-level negotiations", "Project leadership", "Advanced management",
			},
			SpeakingTasks: []string{
				"Expert professional communication", "Advanced academic discourse",
				"Complex problem analysis", "Strategic planning", "Research presentation",
				"Cultural analysis", "Sophisticated argumentation", "Expert consultation",
				"Technical explanation", "High-level negotiation", "Project leadership",
				"Advanced management communication",
			},
			DifficultyIndicators: []string{
				"Professional expertise", "Academic sophistication",
				"Complex analytical thinking", "Strategic communication",
				"Research proficiency", "Cultural expertise",
			},
		},
		{
			Code:         "AH",
			Name:         "Advanced High",
			Description:  "Near-native proficiency with cultural mastery",
			PassingScore: PassingScore,
			Color:        "#E91E63",
			Topics: []string{
				"Expert Professional Communication", "Advanced Academic Research",
				"Complex Cultural Analysis", "Sophisticated Argumentation",
				"High-level Strategic Thinking", "Advanced Problem Solving",
				"Expert Presentations", "Complex Negotiations",
				"Advanced Leadership Communication", "Sophisticated Analysis",
				"Expert-level Discussions", "Near-native Interactions",
			},
			GrammarFocus: []string{
				"Native-like structures",
				"Advanced stylistic variation",
				"Sophisticated discourse management",
				"Complex pragmatic awareness",
				"Advanced register control",
				"Sophisticated emphasis and focus",
				"Complex grammatical metaphor",
				"Advanced textual organization",
				"Native-like fluency markers",
				"Sophisticated hedging",
				"Complex modal meanings",
				"Advanced pragmatic competence",
			},
			VocabularyThemes: []string{
				"Expert professional language", "Advanced research terminology",
				"Complex cultural concepts", "Sophisticated argumentation",
				"Strategic thinking vocabulary", "Advanced problem solving",
				"Expert presentation language", "Complex negotiation terms",
				"Advanced leadership concepts", "Sophisticated analysis",
				"Expert discussion language", "Near-native expressions",
			},
			CulturalContexts: []string{
				"Expert professional culture", "Advanced academic culture",
				"Complex cultural understanding", "Sophisticated discourse",
				"Strategic thinking culture", "Advanced problem-solving mindset",
				"Expert presentation culture", "Complex negotiation environment",
				"Advanced leadership culture", "Sophisticated analytical thinking",
				"Expert discussion culture", "Near-native cultural competence",
			},
			SpeakingTasks: []string{
				"Expert professional discourse", "Advanced academic research presentation",
				"Complex cultural analysis", "Sophisticated debate and argumentation",
				"High-level strategic communication", "Advanced problem-solving discussion",
				"Expert-level presentations", "Complex high-stakes negotiations",
				"Advanced leadership communication", "Sophisticated analytical discourse",
				"Expert-level academic and professional discussions", "Near-native social interactions",
			},
			DifficultyIndicators: []string{
				"Near-native fluency", "Expert-level discourse",
				"Sophisticated cultural competence", "Advanced pragmatic skills",
				"Complex analytical ability", "Native-like communication patterns",
			},
		},
	}
}
