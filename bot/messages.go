package bot

// All user-facing copy, in Kyrgyz like the audience.
const (
	msgIntro = "Салам! 👋 Бул бот SAT Math суроолорун кыргызча берёт: A/B/C/D варианттары, сүрөттөр, түшүндүрмө, Previous/Next навигациясы.\n\n" +
		"Командалар:\n" +
		"• /random — рандом суроо\n" +
		"• /goto 25 — номер боюнча өтүү\n" +
		"• /stats — статистика\n" +
		"• /review_wrong — ката суроолор\n" +
		"• /topics — темалар\n\n" +
		"🇬🇧 English: SAT Math practice in Kyrgyz: images, explanations, navigation."

	msgHelp = "Негизги командалар:\n" +
		"• /start — баштапкы меню\n" +
		"• /random — рандом суроо\n" +
		"• /goto 25 — 25-суроого өтүү\n" +
		"• /stats — сенин статистикаң\n" +
		"• /review_wrong — мурун ката кеткен суроолор\n" +
		"• /topics — бардык темалар\n" +
		"• /topic Algebra — белгилүү тема боюнча суроо"

	msgUnknown = "Команда түшүнүксүз.\n" +
		"Колдонсоң болот:\n" +
		"• /start — баштапкы меню\n" +
		"• /random — рандом суроо\n" +
		"• /goto 15 — 15-суроого өтүү\n" +
		"• /stats — сенин статистикаң\n" +
		"• /review_wrong — ката суроолор"

	msgGotoFormat      = "Туура формат: /goto 59"
	msgTopicFormat     = "Туура формат: /topic Algebra"
	msgNoQuestion      = "Бул номердеги суроо жок."
	msgNoSuchTopic     = "Мындай тема табылган жок. /topics командасын кара."
	msgNothingToReview = "Азырынча ката суроолор жок же баарын оңдогонсүң. 👌"
	msgFirstQuestion   = "Бул биринчи суроо."
	msgLastQuestion    = "Бул акыркы суроо."
	msgLevelEmpty      = "Бул деңгээлде суроолор жок."
	msgLevelComplete   = "Бул деңгээлдеги бардык суроолорду бүттүң."
	msgNoStats         = "Азырынча статистика жок. Адегенде суроолорду чеч."
	msgNoTopics        = "Азырынча темалар белгиленген эмес."

	msgTopicUsage = "\nБелгилүү темадан суроо алуу үчүн:\n/topic <аталыш>\nМисалы: /topic Algebra"
)
