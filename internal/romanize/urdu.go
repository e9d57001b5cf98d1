package romanize

// urduWords gives readable roman Urdu for common words and phrases.
var urduWords = map[string]string{
	// Pronouns
	"میں": "main", "تم": "tum", "آپ": "aap", "ہم": "hum",
	"وہ": "woh", "یہ": "yeh", "وہاں": "wahan", "یہاں": "yahan",
	"میرا": "mera", "میری": "meri", "میرے": "mere",
	"ہمارا": "hamara", "ہماری": "hamari", "ہمارے": "hamare",

	// Greetings & basics
	"سلام": "salaam", "ہیلو": "hello", "ہائے": "hi",
	"کیسے": "kaise", "ہوں": "hoon", "ہے": "hai", "ہیں": "hain",
	"ہاں": "haan", "نہیں": "nahin", "ٹھیک": "theek",

	// Common verbs
	"کرنا": "karna", "کرتا": "karta", "کرتی": "karti",
	"جانا": "jana", "جاتا": "jata", "جاتی": "jati",
	"کھانا": "khana", "پینا": "peena", "سونا": "sona",
	"دیکھنا": "dekhna", "آنا": "aana", "دینا": "dena", "لینا": "lena",

	// Time & daily
	"آج": "aaj", "کل": "kal", "اب": "ab", "پھر": "phir",
	"صبح": "subah", "شام": "shaam", "رات": "raat", "دن": "din",
	"ہفتہ": "hafta", "مہینہ": "mahina", "سال": "saal",

	// Feelings
	"پیار": "pyaar", "محبت": "mohabbat", "خوشی": "khushi",
	"غم": "gham", "زندگی": "zindagi", "دل": "dil",
	"دنیا": "duniya", "اللہ": "Allah", "انسان": "insaan",

	// Numbers 1-10
	"ایک": "ek", "دو": "do", "تین": "teen", "چار": "chaar", "پانچ": "paanch",
	"چھ": "chhay", "سات": "saat", "آٹھ": "aath", "نو": "nau", "دس": "das",

	// Loanwords
	"ٹکنالوجی": "Technology", "ٹول": "tool",
	"باکس": "box", "خلا": "space",
}

// urduChars is the character-level fallback for words not in the dictionary.
var urduChars = map[rune]string{
	'ا': "a", 'آ': "aa",
	'ب': "b", 'پ': "p",
	'ت': "t", 'ٹ': "t",
	'ث': "s",
	'ج': "j", 'چ': "ch",
	'ح': "h", 'خ': "kh",
	'د': "d", 'ڈ': "d",
	'ذ': "z",
	'ر': "r", 'ڑ': "r",
	'ز': "z", 'ژ': "zh",
	'س': "s", 'ش': "sh",
	'ص': "s", 'ض': "z",
	'ط': "t", 'ظ': "z",
	'ع': "'", 'غ': "gh",
	'ف': "f",
	'ق': "q",
	'ک': "k", 'گ': "g",
	'ل': "l",
	'م': "m",
	'ن': "n", 'ں': "n",
	'و': "o", 'ؤ': "o",
	'ہ': "h", 'ھ': "h",
	'ی': "y", 'ے': "e", 'ئ': "i",
	'ء': "'", 0x0653: "", 0x0654: "",
}

// Urdu romanizes Urdu text: dictionary hits first for natural output, then
// the character map for the rest.
func Urdu(text string) string {
	return mapWords(text, urduWords, urduChars)
}
