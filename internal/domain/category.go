package domain

// Category is one dashboard category with the merchant keywords the dashboard
// uses to auto-classify transactions.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CategoryCatalog is the static category list served on /categories.
type CategoryCatalog struct {
	Categories []Category `json:"categories"`
}

// Names returns the category names in catalog order.
func (c CategoryCatalog) Names() []string {
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// Categories returns the category catalog. Every call builds a fresh value.
func Categories() CategoryCatalog {
	cats := make([]Category, 0, len(categoryKeywords))
	for _, c := range categoryKeywords {
		keywords := make([]string, len(c.keywords))
		copy(keywords, c.keywords)
		cats = append(cats, Category{Name: c.name, Keywords: keywords})
	}
	return CategoryCatalog{Categories: cats}
}

var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Food Delivery", []string{
		"jahez", "hungerstation", "hunger station", "chefz", "careem food", "mrsool", "toyou", "to you",
		"wssel", "keeta", "marsool", "the chefz", "ananinja", "ana ninja", "founder of candy",
	}},
	{"Groceries", []string{
		"danube", "tamimi", "panda", "lulu", "carrefour", "farm superstores", "othaim", "bindawood",
		"nova water", "mawnah", "supermarket", "grocery", "bin dawood", "bustan alghalyah",
		"saudi marketing co", "themar aljathab", "durrat al watan", "zad al tamween", "tamwnat",
		"aljamal alraqy", "national water", "rawafed market", "mujahid al harbi veg",
		"wadi qurtbah market", "alnabea alnaqi", "aswaq", "shmouk baladi", "euromarche",
		"hybrid euromarche", "hybrid prince sult", "market smsm", "tamwinat rukn",
	}},
	{"Dining Out", []string{
		"romansiah", "herfy", "kudu", "mcdonalds", "mcdonald", "mc donald", "burger king",
		"burgerkingthum", "burgerkingothman", "burgerkingh", "kfc", "starbucks", "dunkin", "subway",
		"dominos", "domino", "pizza hut", "shawarma", "restaurant", "restaorant", "restura", "al baik",
		"albaik", "shahi lamma", "mamanoura", "al hodooj", "alhodooj", "bofia", "samsm basta", "zafyra",
		"al harshwna", "alharshwna", "keef aloroba", "wingstop", "beika", "asia road holding fo",
		"mysr-fnb", "dwar alsadah", "frooj", "sweet delicious", "bread ahead", "easy bakery",
		"baba khabbaz", "allo beirut", "allobeirut", "mashagheth", "diwaan alakkil", "habibah sweets",
		"global potato corner", "uptown donuts", "movenpick ice cream", "golden chimney", "feroj al",
		"al ahlia resturant", "cravia arabia", "meatcorner", "meat corner", "baja food", "bajafood",
		"paul park avenue", "q-paul", "paul", "arwana artisan", "lepain bakery", "mtam", "mtaam",
		"mateam", "nwadr", "qalat alenayh", "yourchoice", "sixty five degrees", "oxxo", "lemon co",
		"qaleah alhalwaa", "sisi", "eatry", "thft alhdart", "tahfat al hadara", "tahfatalhadara",
		"pinkberry", "baskin robbins", "krispy kreme", "piatto", "green dragon", "asq international fo",
		"swik taka", "tarmoom", "ssp arabia", "ssparabia", "wendys", "wendy", "nandos", "sbarro",
		"sbaroo", "cold stone", "coldstone", "century burger", "tikka way", "marbleslab", "marble slab",
		"fire grill", "hakra burger", "texas road", "texasroad", "swiss butter", "swissbutter", "q-molo",
		"chef falafel", "cheffalafel", "al mahawi sweets", "hlweat saad", "seven hundred restau",
		"corner tut wurman", "al diwaniyah", "mansour faraj restau", "zouq beirut", "fish auction",
		"fishauction", "shawerma", "shawermaji", "food gate", "express food", "neyam", "madghout baytna",
		"madghut baytina", "al liwan", "alliwan", "tulin palace bakery", "tarfa bakeries",
		"tarfabakeries", "moroccan taste", "kebab", "ritazza", "q-chica", "chica", "matam khareta",
		"dawar alsaadah", "breakfast club", "ben s cookies", "benscookies", "home bakery",
	}},
	{"Online Shopping", []string{
		"noon", "amazon", "alibaba", "aliexpress", "shein", "namshi", "iherb", "noon.com", "mini so",
		"tabby", "tamara", "neweppplan", "alsaifgallery", "alsaif gallery", "nana", "keemart",
		"jetstoreksa",
	}},
	{"Fashion", []string{
		"zara", "h&m", "centrepoint", "max fashion", "max 60", "splash", "dior", "zyros", "golden drop",
		"nike", "adidas", "mohamed s ajlan", "ajlan sons", "terranova", "lefties", "rare and basics",
		"rareandbasics", "al majed oud", "apparel trading", "semir park", "azadea", "azdeadal", "kiabi",
		"sun and sand spo", "marks and", "brands for less", "pull  bear", "under armour", "skechers",
		"parfois", "red tag", "claires", "fahed alhokair", "ricc", "avenue  4087", "bershka",
		"zic style", "pan emira", "panemira", "aalm brayft llabayat", "taraf llmalbs", "acto city",
		"sahm al-tafseel", "puma", "lc waikiki", "giordano", "stradivarius", "springfield",
		"mango al hamra", "nayomi", "trendyol", "punt roma", "calliobe", "blue age", "brand bazar",
		"la vie en rose", "ikks", "govyy", "riva salam", "decathlon",
	}},
	{"Kids & Family", []string{
		"landmark", "mothercare", "babyshop", "baby shop", "toys", "chuck e", "sparky", "bounce",
		"trampoline", "dar ehsas", "mamas & papas", "funtura", "happy family", "carters",
		"centrl galaxy childr", "billy beez", "funky monkey", "habby city",
	}},
	{"Health", []string{
		"alnahdi", "nahdi", "nahdionline", "whites", "al dawaa", "dawaa", "pharmacy", "shams pharmacy",
		"asharq alawsat pharm", "sehat al hamra", "hospital", "fakeeh hospital", "dr. mohammed",
		"dr sulaiman", "drsulaiman", "marakez medical", "nmc stature", "nmc4087", "alsalman optics",
		"nutrition world", "hakeem oyoun", "alsafa co for pharma", "alsafa warehouse pha",
		"nutrition corner", "dr mohammad rashid", "house of medicines",
	}},
	{"Personal Care", []string{
		"dar alanayt", "daralanayt", "bath body", "bath & body", "sephora", "faces", "salon", "barber",
		"lubna obaid", "alamah muzneh", "ajmal perfumes", "ajamal perfumes", "perfumista", "oud-bakhoor",
		"al majed oud", "almajed 4 oud", "orange bed and bath", "orangebedandbath",
		"washering the clothe", "burjalhamam", "laundry", "aljabr", "dkhoun", "asghar ali", "asgharali",
		"knoz cosmetics", "fresha",
	}},
	{"Home & Furniture", []string{
		"ikea", "extra stores", "classic home", "home center", "homecenter", "saco", "abyat",
		"ikaf arabian", "extrariyadh", "extra rs", "villeroy and boch", "beata garden",
		"makhazen alenaya", "dar alamerat", "lazboy", "la-z-boy", "alfares floor", "alfaresfloor",
		"alfares f", "dream home", "sleephigh", "stars home", "masdar hardware", "ealam alsajaad",
		"nternational lightin", "united homeware", "daiso",
	}},
	{"Electronics", []string{
		"jarir", "apple store", "samsung store", "al falak electronic", "alfalak", "applecare",
		"nextjafz",
	}},
	{"Subscriptions", []string{
		"apple.com/bill", "apple.com", "netflix", "spotify", "shahid", "google play", "youtube premium",
		"adobe", "openai", "chatgpt", "audible", "itunes", "mqhy ayhaa", "mqhyayhaa", "osn",
		"eshtrakati", "webook",
	}},
	{"Transport", []string{
		"petromin", "fuel", "uber", "careem", "riyadh metro", "metro", "parking", "black parking",
		"drive", "riyadh airports", "best bautteres", "best batteries", "riaydhairports",
		"bestbautterest", "aldrees", "thumama station", "wafi energy", "liter co", "litertrading",
		"well gas station", "well  petroleum", "sasco", "et car hire", "transit", "octain gas",
		"petroly", "sahel station", "nitaq car",
	}},
	{"Travel", []string{
		"saudi airlines", "saudia", "flynas", "fly nas", "booking.com", "agoda", "hotel", "airbnb",
		"holafly", "catrion flynas", "takamol e-visa", "hilton", "causeway", "cff gare", "sbb",
		"chemin de fer", "mobchemin", "lausanne", "geneve", "geneva",
	}},
	{"Bills & Utilities", []string{
		"sadad", "saudi electricity", "stc", "saudi telecom", "sauditeleco", "mobily", "zain",
		"stc prepaid", "stc pay", "vat on markup", "annualfee", "annual fee", "cash/digital", "tawaruq",
		"tameeni", "insurance",
	}},
	{"Education", []string{
		"school", "university", "udemy", "coursera", "education", "academy", "bookstore",
	}},
	{"Entertainment", []string{
		"cinema", "vox", "amc", "muvi", "playstation", "steam", "king abdulaziz cultura",
		"kingabdulazizcultura", "ithra", "blvd world", "al momayaz for enter", "origo",
		"arabian entertainmen", "hala yalla", "halayalla",
	}},
	{"Coffee", []string{
		"barn", "dose", "specialty bean", "ataad coffee", "caribou", "tim hortons", "costa coffee",
		"beehive cafe", "beehivecafe", "coffee address", "coffeeaddress", "cocafe", "address coffee",
		"addresscoffee", "miraqe", "brew 92", "brew92", "ghosn cafe", "munirah kayf", "jaafar beverage",
		"osoalco", "osoal co", "4twins", "signature", "8oz coffee", "joes cafe", "drcafe", "dr cafe",
		"cat house beverage", "traveler cafe", "mawjat", "belong", "blue star cafe", "latt liv",
		"theroasterysa", "roastery", "different beans", "beanery", "coffee tools", "coffeetools",
		"coffee extract", "core coffee", "spirit cafe", "haten cafe", "line cafe", "six ouonces",
		"12 cups", "das mond caffe", "nara cafe",
	}},
	{"Smart Home", []string{
		"shelly", "zigbee", "sonoff", "tuya", "grandstream", "smart home", "aomei", "allterco",
	}},
	{"Business", []string{
		"spl", "al kaffar", "office", "print", "fedex", "aramex", "postal services", "masarat mecherga",
		"almada for", "sahl almanal", "fatoora", "absher", "tasaneef",
	}},
	{"Gifts", []string{
		"gift", "flowers", "chocolat", "patchi", "charity", "donation", "bashayer mashhour",
		"bashayermashhour", "safa al jamali", "safaaljamali", "ehsan", "ehsanplatform", "alaraies",
		"woroud mahra",
	}},
	{"Other", []string{}},
}
