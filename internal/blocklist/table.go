package blocklist

// Criteria: would this word be unacceptable on the on-chain leaderboard, in a
// social recap ("Today's top word was ___!") or in a screenshot shared in
// crypto media?
//
// Entries are matched as whole tokens only. Words that merely contain an
// entry ("assassin", "peacock", "grape", "shell") are never affected.
var categories = []Category{
	{
		Name: "racial/ethnic slurs",
		Words: []string{
			"nigger", "niggers", "nigga", "niggas",
			"chink", "chinks",
			"gook", "gooks",
			"kike", "kikes",
			"spic", "spics",
			"wop", "wops",
			"wetback", "wetbacks",
			"beaner", "beaners",
			"redskin", "redskins",
			"darky", "darkey", "darkies",
			"honky", "honkies",
			"gringo", "gringos",
			"raghead", "ragheads",
			"spook", "spooks", // also ghost, too risky
			"coon", "coons", // also raccoon, too risky
			"sambo",
			"pickaninny",
			"jigaboo",
			"mulatto", "mulattos",
			"negro", "negros", "negroes",
			"ghetto", "ghettos",
			"snigger", "sniggered",
		},
	},
	{
		Name: "gendered/sexual slurs",
		Words: []string{
			"bitch", "bitched", "bitches", "bitching", "bitchy",
			"cunt", "cunts",
			"slut", "sluts", "slutty",
			"twat", "twats",
			"whore", "whores", "whoring",
			"hooker", "hookers",
			"harlot", "harlots",
			"pimp", "pimps", "pimped", "pimping",
		},
	},
	{
		Name: "homophobic/transphobic slurs",
		Words: []string{
			"fag", "fags", "faggot", "faggots",
			"dyke", "dykes",
			"lesbo", "lesbos",
			"tranny", "trannies",
			"shemale", "shemales",
			"homo", "homos",
		},
	},
	{
		Name: "ableist slurs",
		Words: []string{
			"retard", "retards", "retarded",
			"cripple", "crippled", "cripples",
			"spaz", "spazz", "spastic",
		},
	},
	{
		Name: "severe profanity",
		Words: []string{
			"fuck", "fucked", "fucker", "fuckers", "fucking", "fucks",
			"shit", "shits", "shitty", "shittier", "shitting", "bullshit",
			"ass",
			"asshole", "assholes",
			"goddamn",
			"bastard", "bastards",
			"piss", "pissed", "pisses", "pissing",
			"crap", "crapped", "crapping", "crappy", "craps",
		},
	},
	{
		Name: "crude sexual/anatomical terms",
		Words: []string{
			"cock", "cocks",
			"dick", "dicks",
			"vagina", "vaginal",
			"scrotum",
			"tits", "titty", "titties",
			"nipple", "nipples",
			"dildo", "dildos",
			"clitoris",
			"rape", "raped", "rapes", "raping", "rapist",
			"orgasm", "orgasms",
			"ejaculate",
			"masturbate",
			"erection", // "erect" stays
			"blowjob",
			"handjob",
			"pedo", "pedos",
		},
	},
	{
		Name: "crude bodily/scatological terms",
		Words: []string{
			"anus",
			"snot",
			"booger", "boogers",
			"barf", "barfed", "barfing",
		},
	},
	{
		Name: "additional sexual/anatomical terms",
		Words: []string{
			"erotic", "erotica",
			"fetish", "fetishes",
			"libido",
			"coitus",
			"genital", "genitals",
			"testicle", "testicles",
			"phallus",
			"anal",
			"rectal",
		},
	},
	{
		Name: "ableist/archaic slurs",
		Words: []string{
			"cretin", "cretins",
			"imbecile", "imbeciles",
			"midget", "midgets",
			"leper", "lepers",
			"wench",
			"tramp", "tramps",
		},
	},
	{
		Name: "other offensive terms",
		Words: []string{
			"nazi", "nazis",
			"lynch", "lynched", "lynches", "lynching",
			"redneck", "rednecks",
			"jihad", "jihads", "jihadist", "jihadists",
			"rapist", "rapists",
		},
	},
	{
		// Added when the maximum word length went from 8 to 12: direct
		// inflections of words already blocked above.
		Name: "longer inflections",
		Words: []string{
			"cocksucker", "cocksuckers",
			"ejaculated", "ejaculating", "ejaculation",
			"erections",
			"erotically", "eroticism",
			"fetishism", "fetishist",
			"genitalia",
			"masturbated", "masturbates", "masturbating", "masturbation",
			"titillating", "titillation",
			"goddamned",
			"motherfucker",
			"shittiest",
			"retardation",
			"sniggering",
			"prostitute", "prostituted", "prostitutes", "prostituting", "prostitution",
			"transvestite",
			"whorehouse",
		},
	},
}
