// Ordinal word and suffix tables.
package ordinal

// forms holds the Odia, Roman and Odilish variants of a word.
type forms [3]string

// ordinalSuffix is appended to a cardinal when no dedicated ordinal word
// exists ("ekoiśi" → "ekoiśitama").
var ordinalSuffix = forms{"ତମ", "tama", "tama"}

// ordinalWords maps numbers with dedicated Odia ordinal words. Everything
// else derives as cardinal + ତମ.
var ordinalWords = map[int64]forms{
	1:        {"ପ୍ରଥମ", "prathama", "prathama"},
	2:        {"ଦ୍ୱିତୀୟ", "dwitīẏa", "dwitiya"},
	3:        {"ତୃତୀୟ", "tr̥tīẏa", "trutiya"},
	4:        {"ଚତୁର୍ଥ", "caturtha", "chaturtha"},
	5:        {"ପଞ୍ଚମ", "pañcama", "panchama"},
	6:        {"ଷଷ୍ଠ", "ṣaṣṭha", "shashtha"},
	7:        {"ସପ୍ତମ", "saptama", "saptama"},
	8:        {"ଅଷ୍ଟମ", "aṣṭama", "ashtama"},
	9:        {"ନବମ", "nabama", "nabama"},
	10:       {"ଦଶମ", "daśama", "dashama"},
	11:       {"ଏକାଦଶ", "ekādaśa", "ekadasha"},
	12:       {"ଦ୍ୱାଦଶ", "dwādaśa", "dwadasha"},
	13:       {"ତ୍ରୟୋଦଶ", "traẏodaśa", "trayodasha"},
	14:       {"ଚତୁର୍ଦ୍ଦଶ", "caturddaśa", "chaturddasha"},
	15:       {"ପଞ୍ଚଦଶ", "pañcadaśa", "panchadasha"},
	16:       {"ଷୋଡ଼ଶ", "ṣoṛaśa", "shodasha"},
	17:       {"ସପ୍ତଦଶ", "saptadaśa", "saptadasha"},
	18:       {"ଅଷ୍ଟାଦଶ", "aṣtādaśa", "ashtadasha"},
	19:       {"ଊନବିଂଶ", "ūnabiṁśa", "unabinsha"},
	20:       {"ବିଂଶ", "biṁśa", "binsha"},
	30:       {"ତ୍ରିଂଶ", "triṁśa", "trinsha"},
	40:       {"ଚତ୍ୱାରିଂଶ", "catwāriṁśa", "catwarinsha"},
	50:       {"ପଞ୍ଚାଶତ୍ତମ", "pañcāśattam", "panchashattam"},
	60:       {"ଷଷ୍ଠିତମ", "ṣaṣṭhitama", "shashthitama"},
	70:       {"ସପ୍ତତିତମ", "saptatitama", "saptatitama"},
	80:       {"ଅଶୀତିତମ", "aśītitama", "ashititama"},
	90:       {"ନବତିତମ", "nabatitama", "nabatitama"},
	100:      {"ଶତତମ", "śatatama", "shatatama"},
	1000:     {"ସହସ୍ରତମ", "sahasratama", "sahasratama"},
	100000:   {"ଲକ୍ଷତମ", "lakṣatama", "lakshatama"},
	10000000: {"କୋଟିତମ", "koṭitama", "kotitama"},
}

// numeralSuffixes maps a value (1–10) or a trailing digit to the Odia
// suffix of its numeric ordinal (୧ମ, ୨ୟ, ୪ର୍ଥ, …).
var numeralSuffixes = map[int64]string{
	1:  "ମ",
	2:  "ୟ",
	3:  "ୟ",
	4:  "ର୍ଥ",
	5:  "ମ",
	6:  "ଷ୍ଠ",
	7:  "ମ",
	8:  "ମ",
	9:  "ମ",
	10: "ମ",
}

const (
	// numeralTeensSuffix serves 11ଶ through 18ଶ.
	numeralTeensSuffix = "ଶ"

	// numeralDefaultSuffix is the general fallback.
	numeralDefaultSuffix = "ମ"
)

// englishOrdinals covers the irregular English ordinal words; compounds
// derive as decade-cardinal + hyphen + ones-ordinal.
var englishOrdinals = map[int64]string{
	1:  "first",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "eighth",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelfth",
	13: "thirteenth",
	14: "fourteenth",
	15: "fifteenth",
	16: "sixteenth",
	17: "seventeenth",
	18: "eighteenth",
	19: "nineteenth",
	20: "twentieth",
	30: "thirtieth",
	40: "fortieth",
	50: "fiftieth",
	60: "sixtieth",
	70: "seventieth",
	80: "eightieth",
	90: "ninetieth",
}
