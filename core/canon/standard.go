package canon

// standardBooks is the 66-book Protestant canon in canon order.
// Chapter counts, OSIS codes, testaments and categories follow the books table
// shipped with the reader database.
var standardBooks = []Book{
	// Old Testament - Pentateuch
	{ID: 1, Name: "Genesis", OSIS: "Gen", ChapterCount: 50, Testament: OldTestament, Category: CategoryPentateuch,
		Abbreviations: []string{"Ge", "Gn"}},
	{ID: 2, Name: "Exodus", OSIS: "Exod", ChapterCount: 40, Testament: OldTestament, Category: CategoryPentateuch,
		Abbreviations: []string{"Exo", "Ex"}},
	{ID: 3, Name: "Leviticus", OSIS: "Lev", ChapterCount: 27, Testament: OldTestament, Category: CategoryPentateuch,
		Abbreviations: []string{"Le", "Lv"}},
	{ID: 4, Name: "Numbers", OSIS: "Num", ChapterCount: 36, Testament: OldTestament, Category: CategoryPentateuch,
		Abbreviations: []string{"Nu", "Nm", "Nb"}},
	{ID: 5, Name: "Deuteronomy", OSIS: "Deut", ChapterCount: 34, Testament: OldTestament, Category: CategoryPentateuch,
		Abbreviations: []string{"Deu", "Dt"}},

	// Historical
	{ID: 6, Name: "Joshua", OSIS: "Josh", ChapterCount: 24, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Jos", "Jsh"}},
	{ID: 7, Name: "Judges", OSIS: "Judg", ChapterCount: 21, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Jdg", "Jdgs"}},
	{ID: 8, Name: "Ruth", OSIS: "Ruth", ChapterCount: 4, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Rth", "Ru"}},
	{ID: 9, Name: "1 Samuel", OSIS: "1Sam", ChapterCount: 31, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"1 Sam", "1Sa", "1 Sa"}},
	{ID: 10, Name: "2 Samuel", OSIS: "2Sam", ChapterCount: 24, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"2 Sam", "2Sa", "2 Sa"}},
	{ID: 11, Name: "1 Kings", OSIS: "1Kgs", ChapterCount: 22, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"1 Kgs", "1Ki", "1Kin"}},
	{ID: 12, Name: "2 Kings", OSIS: "2Kgs", ChapterCount: 25, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"2 Kgs", "2Ki", "2Kin"}},
	{ID: 13, Name: "1 Chronicles", OSIS: "1Chr", ChapterCount: 29, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"1 Chr", "1Ch", "1Chron"}},
	{ID: 14, Name: "2 Chronicles", OSIS: "2Chr", ChapterCount: 36, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"2 Chr", "2Ch", "2Chron"}},
	{ID: 15, Name: "Ezra", OSIS: "Ezra", ChapterCount: 10, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Ezr"}},
	{ID: 16, Name: "Nehemiah", OSIS: "Neh", ChapterCount: 13, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Ne"}},
	{ID: 17, Name: "Esther", OSIS: "Esth", ChapterCount: 10, Testament: OldTestament, Category: CategoryHistorical,
		Abbreviations: []string{"Est", "Es"}},

	// Wisdom/Poetry
	{ID: 18, Name: "Job", OSIS: "Job", ChapterCount: 42, Testament: OldTestament, Category: CategoryWisdom,
		Abbreviations: []string{"Jb"}},
	{ID: 19, Name: "Psalms", OSIS: "Ps", ChapterCount: 150, Testament: OldTestament, Category: CategoryWisdom,
		Abbreviations: []string{"Psa", "Psalm", "Pss", "Psm"}},
	{ID: 20, Name: "Proverbs", OSIS: "Prov", ChapterCount: 31, Testament: OldTestament, Category: CategoryWisdom,
		Abbreviations: []string{"Pro", "Prv", "Pr"}},
	{ID: 21, Name: "Ecclesiastes", OSIS: "Eccl", ChapterCount: 12, Testament: OldTestament, Category: CategoryWisdom,
		Abbreviations: []string{"Ecc", "Ec", "Qoh"}},
	{ID: 22, Name: "Song of Solomon", OSIS: "Song", ChapterCount: 8, Testament: OldTestament, Category: CategoryWisdom,
		Abbreviations: []string{"Song of Songs", "SoS", "Canticles", "Cant"}},

	// Major Prophets
	{ID: 23, Name: "Isaiah", OSIS: "Isa", ChapterCount: 66, Testament: OldTestament, Category: CategoryMajorProphets,
		Abbreviations: []string{"Is"}},
	{ID: 24, Name: "Jeremiah", OSIS: "Jer", ChapterCount: 52, Testament: OldTestament, Category: CategoryMajorProphets,
		Abbreviations: []string{"Je", "Jr"}},
	{ID: 25, Name: "Lamentations", OSIS: "Lam", ChapterCount: 5, Testament: OldTestament, Category: CategoryMajorProphets,
		Abbreviations: []string{"La"}},
	{ID: 26, Name: "Ezekiel", OSIS: "Ezek", ChapterCount: 48, Testament: OldTestament, Category: CategoryMajorProphets,
		Abbreviations: []string{"Eze", "Ezk"}},
	{ID: 27, Name: "Daniel", OSIS: "Dan", ChapterCount: 12, Testament: OldTestament, Category: CategoryMajorProphets,
		Abbreviations: []string{"Da", "Dn"}},

	// Minor Prophets
	{ID: 28, Name: "Hosea", OSIS: "Hos", ChapterCount: 14, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Ho"}},
	{ID: 29, Name: "Joel", OSIS: "Joel", ChapterCount: 3, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Jl"}},
	{ID: 30, Name: "Amos", OSIS: "Amos", ChapterCount: 9, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Am"}},
	{ID: 31, Name: "Obadiah", OSIS: "Obad", ChapterCount: 1, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Ob"}},
	{ID: 32, Name: "Jonah", OSIS: "Jonah", ChapterCount: 4, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Jon", "Jnh"}},
	{ID: 33, Name: "Micah", OSIS: "Mic", ChapterCount: 7, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Mc"}},
	{ID: 34, Name: "Nahum", OSIS: "Nah", ChapterCount: 3, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Na"}},
	{ID: 35, Name: "Habakkuk", OSIS: "Hab", ChapterCount: 3, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Hb"}},
	{ID: 36, Name: "Zephaniah", OSIS: "Zeph", ChapterCount: 3, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Zep", "Zp"}},
	{ID: 37, Name: "Haggai", OSIS: "Hag", ChapterCount: 2, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Hg"}},
	{ID: 38, Name: "Zechariah", OSIS: "Zech", ChapterCount: 14, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Zec", "Zc"}},
	{ID: 39, Name: "Malachi", OSIS: "Mal", ChapterCount: 4, Testament: OldTestament, Category: CategoryMinorProphets,
		Abbreviations: []string{"Ml"}},

	// New Testament - Gospels
	{ID: 40, Name: "Matthew", OSIS: "Matt", ChapterCount: 28, Testament: NewTestament, Category: CategoryGospels,
		Abbreviations: []string{"Mat", "Mt"}},
	{ID: 41, Name: "Mark", OSIS: "Mark", ChapterCount: 16, Testament: NewTestament, Category: CategoryGospels,
		Abbreviations: []string{"Mrk", "Mk", "Mr"}},
	{ID: 42, Name: "Luke", OSIS: "Luke", ChapterCount: 24, Testament: NewTestament, Category: CategoryGospels,
		Abbreviations: []string{"Luk", "Lk"}},
	{ID: 43, Name: "John", OSIS: "John", ChapterCount: 21, Testament: NewTestament, Category: CategoryGospels,
		Abbreviations: []string{"Joh", "Jn", "Jhn"}},

	// Acts
	{ID: 44, Name: "Acts", OSIS: "Acts", ChapterCount: 28, Testament: NewTestament, Category: CategoryActs,
		Abbreviations: []string{"Act", "Ac"}},

	// Pauline Epistles
	{ID: 45, Name: "Romans", OSIS: "Rom", ChapterCount: 16, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Ro", "Rm"}},
	{ID: 46, Name: "1 Corinthians", OSIS: "1Cor", ChapterCount: 16, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"1 Cor", "1Co", "1 Co"}},
	{ID: 47, Name: "2 Corinthians", OSIS: "2Cor", ChapterCount: 13, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"2 Cor", "2Co", "2 Co"}},
	{ID: 48, Name: "Galatians", OSIS: "Gal", ChapterCount: 6, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Ga"}},
	{ID: 49, Name: "Ephesians", OSIS: "Eph", ChapterCount: 6, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Ephes"}},
	{ID: 50, Name: "Philippians", OSIS: "Phil", ChapterCount: 4, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Php", "Pp"}},
	{ID: 51, Name: "Colossians", OSIS: "Col", ChapterCount: 4, Testament: NewTestament, Category: CategoryPaulineEpistles},
	{ID: 52, Name: "1 Thessalonians", OSIS: "1Thess", ChapterCount: 5, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"1 Thess", "1Th", "1Thes"}},
	{ID: 53, Name: "2 Thessalonians", OSIS: "2Thess", ChapterCount: 3, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"2 Thess", "2Th", "2Thes"}},
	{ID: 54, Name: "1 Timothy", OSIS: "1Tim", ChapterCount: 6, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"1 Tim", "1Ti"}},
	{ID: 55, Name: "2 Timothy", OSIS: "2Tim", ChapterCount: 4, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"2 Tim", "2Ti"}},
	{ID: 56, Name: "Titus", OSIS: "Titus", ChapterCount: 3, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Tit"}},
	{ID: 57, Name: "Philemon", OSIS: "Phlm", ChapterCount: 1, Testament: NewTestament, Category: CategoryPaulineEpistles,
		Abbreviations: []string{"Phm", "Philem"}},

	// General Epistles
	{ID: 58, Name: "Hebrews", OSIS: "Heb", ChapterCount: 13, Testament: NewTestament, Category: CategoryGeneralEpistles},
	{ID: 59, Name: "James", OSIS: "Jas", ChapterCount: 5, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"Jm"}},
	{ID: 60, Name: "1 Peter", OSIS: "1Pet", ChapterCount: 5, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"1 Pet", "1Pe", "1Pt"}},
	{ID: 61, Name: "2 Peter", OSIS: "2Pet", ChapterCount: 3, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"2 Pet", "2Pe", "2Pt"}},
	{ID: 62, Name: "1 John", OSIS: "1John", ChapterCount: 5, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"1Jn", "1 Jn", "1Jo"}},
	{ID: 63, Name: "2 John", OSIS: "2John", ChapterCount: 1, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"2Jn", "2 Jn", "2Jo"}},
	{ID: 64, Name: "3 John", OSIS: "3John", ChapterCount: 1, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"3Jn", "3 Jn", "3Jo"}},
	{ID: 65, Name: "Jude", OSIS: "Jude", ChapterCount: 1, Testament: NewTestament, Category: CategoryGeneralEpistles,
		Abbreviations: []string{"Jud", "Jd"}},

	// Apocalyptic
	{ID: 66, Name: "Revelation", OSIS: "Rev", ChapterCount: 22, Testament: NewTestament, Category: CategoryApocalyptic,
		Abbreviations: []string{"Re", "Rv", "Revelations", "Apocalypse"}},
}

// Standard returns a new Directory holding the 66-book Protestant canon.
func Standard() *Directory {
	d, err := New(standardBooks)
	if err != nil {
		// standardBooks is covered by TestStandardDirectory.
		panic("canon: invalid standard directory: " + err.Error())
	}
	return d
}
