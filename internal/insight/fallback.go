package insight

// Lang selects the question language.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// Canned copy used when the remote service cannot help.
const (
	noEntriesInsight  = "Start journaling to discover your weekly pattern."
	emptyInsightText  = "A week full of small details that make up your big story."
	failedInsightText = "A week of quiet, meaningful moments."
)

// fallbackQuestions is the static localized bank used when question
// generation is unavailable.
var fallbackQuestions = map[Lang][]string{
	LangEnglish: {
		"What was the best thing that happened today?",
		"A small moment that made you smile?",
		"Something you learned today that you didn't know before?",
		"What was the dominant feeling of your day?",
		"Someone you are grateful for today?",
		"What would you tell your future self about today?",
		"A challenge you faced and overcame today?",
	},
	LangArabic: {
		"ما هو أجمل شيء حدث لك اليوم؟",
		"لحظة صغيرة جعلتك تبتسم؟",
		"شيء تعلمته اليوم لم تكن تعرفه من قبل؟",
		"ما هو الشعور الغالب على يومك؟",
		"شخص تشعر بالامتنان له اليوم؟",
		"ماذا ستقول لنفسك المستقبلية عن هذا اليوم؟",
		"تحدٍ واجهته وتغلبت عليه اليوم؟",
	},
}

func normalizeLang(lang Lang) Lang {
	if lang == LangArabic {
		return LangArabic
	}
	return LangEnglish
}
