package taxonomy

// Main category ids.
const (
	KhasArya    = 1
	Janajati    = 2
	Madhesi     = 3
	Dalit       = 4
	Newar       = 5
	Muslim      = 6
	OtherMainID = 7
	OtherSubID  = 701
)

var mainCategoryNames = map[int]string{
	KhasArya:    "खस-आर्य",
	Janajati:    "आदिवासी जनजाति",
	Madhesi:     "मधेशी",
	Dalit:       "दलित",
	Newar:       "नेवार",
	Muslim:      "मुस्लिम",
	OtherMainID: "अन्य",
}

var subCategoryNames = map[int]string{
	101: "ब्राह्मण (Bahun)",
	102: "क्षेत्री (Chhetri)",
	103: "ठकुरी (Thakuri)",
	104: "सन्यासी (Sanyasi)",

	201: "मगर (Magar)",
	202: "तामाङ (Tamang)",
	203: "राई (Rai)",
	204: "लिम्बू (Limbu)",
	205: "गुरुङ (Gurung)",
	206: "शेर्पा (Sherpa)",
	207: "थारू (Tharu)",
	208: "भोटे (Bhote)",
	209: "लेप्चा (Lepcha)",
	210: "सुनुवार (Sunuwar)",
	211: "थामी (Thami)",
	212: "चेपाङ (Chepang)",
	213: "जिरेल (Jirel)",
	214: "हायु (Hayu)",
	215: "किरात (Kirat)",
	216: "दनुवार (Danuwar)",
	217: "बोटे (Bote)",
	218: "माझी (Majhi)",
	219: "कुमाल (Kumal)",
	220: "थकाली (Thakali)",

	301: "यादव (Yadav)",
	302: "तेली (Teli)",
	303: "कुर्मी (Kurmi)",
	304: "कोइरी (Koiri)",
	305: "मुसहर (Musahar)",
	306: "धनुक (Dhanuk)",
	307: "मल्लाह (Mallah)",
	308: "कायस्थ (Kayastha)",
	309: "मधेशी ब्राह्मण (Madhesi Brahmin)",
	310: "राजपूत (Rajput)",
	311: "बनिया (Baniya)",
	312: "कहार (Kahar)",

	401: "कामी (Kami)",
	402: "दमाई (Damai)",
	403: "सार्की (Sarki)",
	404: "गाइने (Gaine)",
	405: "बादी (Badi)",
	406: "पहाडी दलित (Pahadi Dalit)",
	407: "मधेशी दलित (Madhesi Dalit)",

	501: "नेवार-श्रेष्ठ (Newar-Shrestha)",
	502: "नेवार-जोशी (Newar-Joshi)",
	503: "नेवार-महर्जन (Newar-Maharjan)",
	504: "नेवार-शाक्य (Newar-Shakya)",
	505: "नेवार-बज्राचार्य (Newar-Bajracharya)",
	506: "नेवार-प्रधान (Newar-Pradhan)",
	507: "नेवार-मानन्धर (Newar-Manandhar)",
	508: "नेवार-तुलाधर (Newar-Tuladhar)",
	509: "नेवार-कर्माचार्य (Newar-Karmacharya)",
	510: "नेवार अन्य (Newar Other)",

	601: "मुस्लिम (Muslim)",

	701: "अन्य (Other)",
}

// entry is the compact literal form of a SurnameRecord. The main category is
// derived from the sub-category id, so a literal cannot disagree with it.
type entry struct {
	devanagari string
	subID      int
}

var knownSurnames = map[string]entry{
	// Bahun
	"acharya":    {"आचार्य", 101},
	"adhikari":   {"अधिकारी", 101},
	"aryal":      {"अर्याल", 101},
	"awasthi":    {"अवस्थी", 101},
	"baral":      {"बराल", 101},
	"bashyal":    {"बस्याल", 101},
	"bhandari":   {"भण्डारी", 101},
	"bhattarai":  {"भट्टराई", 101},
	"bhusal":     {"भुसाल", 101},
	"chapagain":  {"चापागाईं", 101},
	"dahal":      {"दाहाल", 101},
	"devkota":    {"देवकोटा", 101},
	"dhakal":     {"ढकाल", 101},
	"dhital":     {"ढिटाल", 101},
	"dhungana":   {"ढुंगाना", 101},
	"dhungel":    {"ढुंगेल", 101},
	"gautam":     {"गौतम", 101},
	"ghimire":    {"घिमिरे", 101},
	"gyawali":    {"ज्ञवाली", 101},
	"joshi":      {"जोशी", 101},
	"kafle":      {"काफ्ले", 101},
	"khanal":     {"खनाल", 101},
	"khatiwada":  {"खतिवडा", 101},
	"koirala":    {"कोइराला", 101},
	"lamichhane": {"लामिछाने", 101},
	"lamsal":     {"लम्साल", 101},
	"luitel":     {"लुइटेल", 101},
	"mainali":    {"मैनाली", 101},
	"mishra":     {"मिश्र", 101},
	"neupane":    {"न्यौपाने", 101},
	"ojha":       {"ओझा", 101},
	"padhya":     {"पाध्य", 101},
	"pandey":     {"पाण्डे", 101},
	"pandit":     {"पण्डित", 101},
	"pant":       {"पन्त", 101},
	"parajuli":   {"पराजुली", 101},
	"pathak":     {"पाठक", 101},
	"paudel":     {"पौडेल", 101},
	"phuyal":     {"फुयाल", 101},
	"pokharel":   {"पोखरेल", 101},
	"poudyal":    {"पौड्याल", 101},
	"prasai":     {"प्रसाईं", 101},
	"pudasaini":  {"पुडासैनी", 101},
	"pyakurel":   {"प्याकुरेल", 101},
	"regmi":      {"रेग्मी", 101},
	"rijal":      {"रिजाल", 101},
	"rimal":      {"रिमाल", 101},
	"sapkota":    {"सापकोटा", 101},
	"sharma":     {"शर्मा", 101},
	"sigdel":     {"सिग्देल", 101},
	"subedi":     {"सुवेदी", 101},
	"timalsina":  {"तिमिल्सिना", 101},
	"tiwari":     {"तिवारी", 101},
	"tripathi":   {"त्रिपाठी", 101},
	"upadhyay":   {"उपाध्याय", 101},
	"upreti":     {"उप्रेती", 101},

	// Chhetri
	"basnet":     {"बस्नेत", 102},
	"bc":         {"बी.सी.", 102},
	"bista":      {"बिष्ट", 102},
	"bogati":     {"बोगटी", 102},
	"bohara":     {"बोहरा", 102},
	"budha":      {"बुढा", 102},
	"budhathoki": {"बुढाथोकी", 102},
	"chand":      {"चन्द", 102},
	"chhetri":    {"क्षेत्री", 102},
	"dangi":      {"डाँगी", 102},
	"gc":         {"जी.सी.", 102},
	"gharti":     {"घर्ती", 102},
	"karki":      {"कार्की", 102},
	"kc":         {"के.सी.", 102},
	"khadka":     {"खड्का", 102},
	"khatri":     {"खत्री", 102},
	"kunwar":     {"कुँवर", 102},
	"oli":        {"ओली", 102},
	"pun":        {"पुन", 102},
	"rana":       {"राणा", 102},
	"raut":       {"राउत", 102},
	"rawal":      {"रावल", 102},
	"rawat":      {"रावत", 102},
	"rokaya":     {"रोकाया", 102},
	"saud":       {"साउद", 102},
	"shahi":      {"शाही", 102},
	"thapa":      {"थापा", 102},

	// Thakuri
	"shah":    {"शाह", 103},
	"thakuri": {"ठकुरी", 103},

	// Sanyasi
	"giri": {"गिरी", 104},
	"puri": {"पुरी", 104},

	// Magar
	"ale":         {"आले", 201},
	"bura":        {"बुरा", 201},
	"magar":       {"मगर", 201},
	"pulami":      {"पुलामी", 201},
	"rana magar":  {"राना मगर", 201},
	"roka":        {"रोका", 201},
	"thapa magar": {"थापा मगर", 201},

	// Tamang
	"bal":      {"बल", 202},
	"bomjan":   {"बोम्जन", 202},
	"dong":     {"डोङ", 202},
	"ghalan":   {"घलान", 202},
	"ghising":  {"घिसिङ", 202},
	"lama":     {"लामा", 202},
	"moktan":   {"मोक्तान", 202},
	"syangtan": {"स्याङ्तान", 202},
	"tamang":   {"तामाङ", 202},
	"thing":    {"थिङ", 202},
	"waiba":    {"वाइबा", 202},
	"yonjan":   {"योञ्जन", 202},

	// Rai
	"bantawa":  {"बान्तवा", 203},
	"chamling": {"चाम्लिङ", 203},
	"kulung":   {"कुलुङ", 203},
	"rai":      {"राई", 203},
	"thulung":  {"थुलुङ", 203},

	// Limbu
	"chemjong": {"चेम्जोङ", 204},
	"limbu":    {"लिम्बू", 204},
	"lingden":  {"लिङ्देन", 204},
	"nembang":  {"नेम्बाङ", 204},
	"subba":    {"सुब्बा", 204},

	// Gurung, Sherpa, Tharu
	"ghale":     {"घले", 205},
	"gurung":    {"गुरुङ", 205},
	"sherpa":    {"शेर्पा", 206},
	"chaudhary": {"चौधरी", 207},
	"tharu":     {"थारू", 207},

	// Smaller Janajati groups
	"sunuwar": {"सुनुवार", 210},
	"chepang": {"चेपाङ", 212},
	"jirel":   {"जिरेल", 213},
	"hayu":    {"हायु", 214},
	"danuwar": {"दनुवार", 216},
	"bote":    {"बोटे", 217},
	"majhi":   {"माझी", 218},
	"kumal":   {"कुमाल", 219},
	"thakali": {"थकाली", 220},

	// Madhesi
	"yadav":    {"यादव", 301},
	"teli":     {"तेली", 302},
	"kurmi":    {"कुर्मी", 303},
	"mahato":   {"महतो", 303},
	"koiri":    {"कोइरी", 304},
	"musahar":  {"मुसहर", 305},
	"dhanuk":   {"धानुक", 306},
	"mandal":   {"मण्डल", 307},
	"kayastha": {"कायस्थ", 308},
	"jha":      {"झा", 309},
	"singh":    {"सिंह", 310},
	"thakur":   {"ठाकुर", 310},
	"agrawal":  {"अग्रवाल", 311},
	"baniya":   {"बनिया", 311},
	"gupta":    {"गुप्ता", 311},
	"jain":     {"जैन", 311},
	"mehta":    {"मेहता", 311},
	"sah":      {"साह", 311},

	// Dalit
	"bishwakarma": {"विश्वकर्मा", 401},
	"bk":          {"बि.क.", 401},
	"kami":        {"कामी", 401},
	"lohar":       {"लोहार", 401},
	"sunar":       {"सुनार", 401},
	"damai":       {"दमाई", 402},
	"darji":       {"दर्जी", 402},
	"pariyar":     {"परियार", 402},
	"mijar":       {"मिजार", 403},
	"sarki":       {"सार्की", 403},
	"gaine":       {"गाइने", 404},
	"nepali":      {"नेपाली", 406},
	"chamar":      {"चमार", 407},
	"das":         {"दास", 407},
	"harijan":     {"हरिजन", 407},
	"paswan":      {"पासवान", 407},

	// Newar
	"shrestha":    {"श्रेष्ठ", 501},
	"maharjan":    {"महर्जन", 503},
	"shakya":      {"शाक्य", 504},
	"bajracharya": {"बज्राचार्य", 505},
	"pradhan":     {"प्रधान", 506},
	"manandhar":   {"मानन्धर", 507},
	"tuladhar":    {"तुलाधर", 508},
	"karmacharya": {"कर्माचार्य", 509},
	"amatya":      {"अमात्य", 510},
	"awale":       {"आवाले", 510},
	"byanjankar":  {"ब्यञ्जनकार", 510},
	"chitrakar":   {"चित्रकार", 510},
	"dangol":      {"डंगोल", 510},
	"duwal":       {"दुवाल", 510},
	"kansakar":    {"कंसाकार", 510},
	"koju":        {"कोजु", 510},
	"lohani":      {"लोहनी", 510},
	"maharana":    {"महाराणा", 510},
	"malla":       {"मल्ल", 510},
	"maskey":      {"मास्के", 510},
	"napit":       {"नापित", 510},
	"rajbhandari": {"राजभण्डारी", 510},
	"ranjitkar":   {"रञ्जितकार", 510},
	"sayami":      {"सायमी", 510},
	"shilpakar":   {"शिल्पकार", 510},
	"sthapit":     {"स्थापित", 510},
	"suwal":       {"सुवाल", 510},
	"tamrakar":    {"ताम्राकार", 510},

	// Muslim
	"ahmad":    {"अहमद", 601},
	"ali":      {"अली", 601},
	"ansari":   {"अन्सारी", 601},
	"khan":     {"खान", 601},
	"mansur":   {"मन्सुर", 601},
	"miya":     {"मियाँ", 601},
	"muslim":   {"मुस्लिम", 601},
	"sheikh":   {"शेख", 601},
	"siddiqui": {"सिद्दिकी", 601},
}
