// Word tables for Odia number-to-words conversion.
//
// All cardinal forms 0–100 are irregular in Odia (decade+unit fusions),
// so the small table is fully enumerated rather than composed. Sources:
// Chhabila Madhu Barnabodha, Wikipedia (Odia numerals).
package numwords

// forms holds the three written variants of an Odia word, indexed by
// Odia, Roman and Odilish.
type forms [3]string

const (
	growConvert = 64  // estimated bytes for a full cardinal conversion
	growFloat   = 128 // estimated bytes for a decimal conversion
)

var negativeForms = forms{"ବିୟୋଗ", "biẏoga", "biyoga"}

// dashamikForms is the decimal connector word ("point").
var dashamikForms = forms{"ଦଶମିକ", "daśamika", "dashamika"}

// smallForms maps 0–100 to their Odia word forms. Index 100 is the
// standalone word for exactly one hundred (ଶହେ), distinct from the
// unit name ଶହ used inside compounds.
var smallForms = [101]forms{
	{"ଶୂନ", "śūna", "suna"},
	{"ଏକ", "eka", "ek"},
	{"ଦୁଇ", "dui", "dui"},
	{"ତିନି", "tini", "tini"},
	{"ଚାରି", "cāri", "chari"},
	{"ପାଞ୍ଚ", "pāñca", "pancha"},
	{"ଛଅ", "chha'a", "chha"},
	{"ସାତ", "sāta", "sata"},
	{"ଆଠ", "āṭha", "atha"},
	{"ନଅ", "na'a", "naa"},
	{"ଦଶ", "daśa", "dasha"},
	{"ଏଗାର", "egāra", "egar"},
	{"ବାର", "bāra", "bara"},
	{"ତେର", "tera", "tera"},
	{"ଚଉଦ", "cauda", "chauda"},
	{"ପନ୍ଦର", "pandara", "pandara"},
	{"ଷୋହଳ", "ṣohaḷa", "sohala"},
	{"ସତର", "satara", "satara"},
	{"ଅଠର", "aṭhara", "athara"},
	{"ଉଣେଇଶି", "uṇeiśi", "unaisha"},
	{"କୋଡ଼ିଏ", "koṛie", "kodiye"},
	{"ଏକୋଇଶି", "ekōiśi", "ekoishi"},
	{"ବାଇଶି", "bāiśi", "baishi"},
	{"ତେଇଶି", "teiśi", "teishi"},
	{"ଚବିଶି", "cabiśi", "chabishi"},
	{"ପଚିଶି", "paciśi", "pachishi"},
	{"ଛବିଶି", "chabiśi", "chhabishi"},
	{"ସତେଇଶି", "sateiśi", "sataishi"},
	{"ଅଠେଇଶି", "aṭheiśi", "athaishi"},
	{"ଅଣତିରିଶି", "aṇatiriśi", "anatirishi"},
	{"ତିରିଶ", "tiriśa", "tirishi"},
	{"ଏକତିରିଶି", "ekatiriśi", "ektirishi"},
	{"ବତିଶି", "batiśi", "batishi"},
	{"ତେତିଶି", "tetiśi", "tetishi"},
	{"ଚଉତିରିଶି", "cautiriśi", "chautirishi"},
	{"ପଞ୍ଚତିରିଶି", "pañcatiriśi", "panchatirishi"},
	{"ଛତିଶି", "chatiśi", "chhatishi"},
	{"ସଇଁତିରିଶି", "saiñtiriśi", "saitirishi"},
	{"ଅଠତିରିଶି", "aṭhatiriśi", "athatirishi"},
	{"ଅଣଚାଳିଶି", "aṇacāḷiśi", "anachalishi"},
	{"ଚାଳିଶ", "cāḷiśa", "chalishi"},
	{"ଏକଚାଳିଶି", "ekacāḷiśi", "ekchalishi"},
	{"ବୟାଳିଶି", "bayāḷiśi", "bayalishi"},
	{"ତେୟାଳିଶି", "teyāḷiśi", "teyalishi"},
	{"ଚଉରାଳିଶି", "caurāḷiśi", "chauralishi"},
	{"ପଞ୍ଚଚାଳିଶି", "pañcacāḷiśi", "panchachalishi"},
	{"ଛୟାଳିଶି", "chayāḷiśi", "chayalishi"},
	{"ସତଚାଳିଶି", "satacāḷiśi", "satachalishi"},
	{"ଅଠଚାଳିଶି", "aṭhacāḷiśi", "athachalishi"},
	{"ଅଣଚାଶ", "aṇacāśa", "anachasha"},
	{"ପଚାଶ", "pacāśa", "pachasha"},
	{"ଏକାବନ", "ekābana", "ekaban"},
	{"ବାଉନ", "bāuna", "bauna"},
	{"ତେପନ", "tepana", "tepana"},
	{"ଚଉବନ", "caubana", "chaubana"},
	{"ପଞ୍ଚାବନ", "pañcābana", "panchabana"},
	{"ଛପନ", "chapana", "chhapana"},
	{"ସତାବନ", "satābana", "satabana"},
	{"ଅଠାବନ", "aṭhābana", "athabana"},
	{"ଅଣଷଠି", "aṇaṣaṭhi", "anashathi"},
	{"ଷାଠିଏ", "ṣāṭhie", "shathiye"},
	{"ଏକଷଠି", "ekaṣaṭhi", "ekashathi"},
	{"ବାଷଠି", "bāṣaṭhi", "bashathi"},
	{"ତେଷଠି", "teṣaṭhi", "teshathi"},
	{"ଚଉଷଠି", "cauṣaṭhi", "chaushathi"},
	{"ପଞ୍ଚଷଠି", "pañcaṣaṭhi", "panchashathi"},
	{"ଛଅଷଠି", "cha'aṣaṭhi", "chhashathi"},
	{"ସତଷଠି", "sataṣaṭhi", "satashathi"},
	{"ଅଠଷଠି", "aṭhaṣaṭhi", "athashathi"},
	{"ଅଣସ୍ତରି", "aṇastari", "anastari"},
	{"ସତୁରୀ", "saturī", "saturi"},
	{"ଏକସ୍ତରି", "ekastari", "ekastari"},
	{"ବାସ୍ତରି", "bāstari", "bastari"},
	{"ତେସ୍ତରି", "testari", "testari"},
	{"ଚଉସ୍ତରି", "caustari", "chaustari"},
	{"ପଞ୍ଚସ୍ତରି", "pañcastari", "panchastari"},
	{"ଛଅସ୍ତରି", "cha'astari", "chhastari"},
	{"ସତସ୍ତରି", "satastari", "satastari"},
	{"ଅଠସ୍ତରି", "aṭhastari", "athastari"},
	{"ଅଣାଅଶୀ", "aṇāaśī", "anaashi"},
	{"ଅଶୀ", "aśī", "ashi"},
	{"ଏକାଅଶୀ", "ekāaśī", "ekaashi"},
	{"ବୟାଅଶୀ", "bayāaśī", "bayaashi"},
	{"ତେୟାଅଶୀ", "teyāaśī", "teyaashi"},
	{"ଚଉରାଅଶୀ", "caurāaśī", "chauraashi"},
	{"ପଞ୍ଚାଅଶୀ", "pañcāaśī", "panchaashi"},
	{"ଛୟାଅଶୀ", "chayāaśī", "chhayaashi"},
	{"ସତାଅଶୀ", "satāaśī", "sataashi"},
	{"ଅଠାଅଶୀ", "aṭhāaśī", "athaashi"},
	{"ଅଣାନବେ", "aṇānabe", "ananabe"},
	{"ନବେ", "nabe", "nabe"},
	{"ଏକାନବେ", "ekānabe", "ekanabe"},
	{"ବୟାନବେ", "bayānabe", "bayanabe"},
	{"ତେୟାନବେ", "teyānabe", "teyanabe"},
	{"ଚଉରାନବେ", "caurānabe", "chauranabe"},
	{"ପଞ୍ଚାନବେ", "pañcānabe", "panchanabe"},
	{"ଛୟାନବେ", "chayānabe", "chhayanabe"},
	{"ସତାନବେ", "satānabe", "satanabe"},
	{"ଅଠାନବେ", "aṭhānabe", "athanabe"},
	{"ଅନେଶୋତ", "aneśota", "aneshata"},
	{"ଶହେ", "śahe", "shahe"},
}

// unitForms pairs a power-of-ten boundary with its Odia unit name forms.
type unitForms struct {
	magnitude int64
	f         forms
}

// modernUnits lists the modern Indian denominations, largest first.
var modernUnits = []unitForms{
	{10_000_000, forms{"କୋଟି", "kōṭi", "koti"}},
	{100_000, forms{"ଲକ୍ଷ", "lakṣa", "lakhya"}},
	{1_000, forms{"ହଜାର", "hajāra", "hajara"}},
	{100, forms{"ଶହ", "śaha", "saha"}},
}

// barnabodhaUnits lists the classical Barnabodha denominations, largest first.
// The sequence runs śata (10^2) through parārddha (10^17).
var barnabodhaUnits = []unitForms{
	{100_000_000_000_000_000, forms{"ପରାର୍ଦ୍ଧ", "parārddha", "pararddha"}},
	{10_000_000_000_000_000, forms{"ମଧ୍ୟ", "madhya", "madhya"}},
	{1_000_000_000_000_000, forms{"ଅନ୍ତ୍ୟ", "antya", "antya"}},
	{100_000_000_000_000, forms{"ସାଗର", "sāgara", "sagara"}},
	{10_000_000_000_000, forms{"ପଦ୍ମ", "padma", "padma"}},
	{1_000_000_000_000, forms{"ଶଙ୍ଖ", "saṅkha", "shankha"}},
	{100_000_000_000, forms{"ନିଖର୍ବ", "nikharba", "nikharba"}},
	{10_000_000_000, forms{"ଖର୍ବ", "kharba", "kharba"}},
	{1_000_000_000, forms{"ବୃନ୍ଦ", "brunda", "brunda"}},
	{100_000_000, forms{"ଅର୍ବୁଦ", "arbuda", "arbuda"}},
	{10_000_000, forms{"କୋଟି", "kōṭi", "koti"}},
	{1_000_000, forms{"ନିୟୁତ", "niyuta", "niyuta"}},
	{100_000, forms{"ଲକ୍ଷ", "lakṣa", "lakhya"}},
	{10_000, forms{"ଅୟୁତ", "ayuta", "ayuta"}},
	{1_000, forms{"ସହସ୍ର", "sahasra", "sahasra"}},
	{100, forms{"ଶତ", "śata", "shata"}},
}

// englishOnes covers 0–20; everything up to 99 composes as decade-ones
// with a hyphen.
var englishOnes = [21]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
}

// englishTens is indexed by tens digit (2–9); indexes 0 and 1 are unused.
var englishTens = [10]string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

// englishUnits lists Indian-system denominations with English names.
var englishUnits = []ScaleUnit{
	{Magnitude: 10_000_000, Name: "crore"},
	{Magnitude: 100_000, Name: "lakh"},
	{Magnitude: 1_000, Name: "thousand"},
	{Magnitude: 100, Name: "hundred"},
}
