// README: Destination prefix to zone table.
package shipping

// zoneByPrefix maps the first three digits of a ZIP code to its zone.
// Prefixes not listed resolve to DefaultZone.
var zoneByPrefix = map[string]Zone{
	// OR, WA
	"970": ZoneLocal, "971": ZoneLocal, "972": ZoneLocal, "973": ZoneLocal, "974": ZoneLocal, "975": ZoneLocal, "976": ZoneLocal, "977": ZoneLocal,
	"978": ZoneLocal, "979": ZoneLocal, "980": ZoneLocal, "981": ZoneLocal, "982": ZoneLocal, "983": ZoneLocal, "984": ZoneLocal, "985": ZoneLocal,
	"986": ZoneLocal, "988": ZoneLocal, "989": ZoneLocal, "990": ZoneLocal, "991": ZoneLocal, "992": ZoneLocal, "993": ZoneLocal, "994": ZoneLocal,
	// CA, NV, ID, MT
	"832": ZoneWest, "834": ZoneWest, "835": ZoneWest, "836": ZoneWest, "837": ZoneWest, "838": ZoneWest, "839": ZoneWest, "890": ZoneWest,
	"891": ZoneWest, "893": ZoneWest, "895": ZoneWest, "897": ZoneWest, "898": ZoneWest, "900": ZoneWest, "901": ZoneWest, "902": ZoneWest,
	"903": ZoneWest, "904": ZoneWest, "905": ZoneWest, "906": ZoneWest, "907": ZoneWest, "908": ZoneWest, "910": ZoneWest, "911": ZoneWest,
	"912": ZoneWest, "913": ZoneWest, "914": ZoneWest, "915": ZoneWest, "916": ZoneWest, "917": ZoneWest, "918": ZoneWest, "919": ZoneWest,
	"920": ZoneWest, "921": ZoneWest, "922": ZoneWest, "923": ZoneWest, "924": ZoneWest, "925": ZoneWest, "926": ZoneWest, "927": ZoneWest,
	"928": ZoneWest, "930": ZoneWest, "931": ZoneWest, "932": ZoneWest, "933": ZoneWest, "934": ZoneWest, "935": ZoneWest, "936": ZoneWest,
	"937": ZoneWest, "938": ZoneWest, "939": ZoneWest, "940": ZoneWest, "941": ZoneWest, "942": ZoneWest, "943": ZoneWest, "944": ZoneWest,
	"945": ZoneWest, "946": ZoneWest, "947": ZoneWest, "948": ZoneWest, "949": ZoneWest, "950": ZoneWest, "951": ZoneWest, "952": ZoneWest,
	"953": ZoneWest, "954": ZoneWest, "955": ZoneWest, "956": ZoneWest, "957": ZoneWest, "958": ZoneWest, "959": ZoneWest, "960": ZoneWest,
	"961": ZoneWest, "590": ZoneWest, "591": ZoneWest, "592": ZoneWest, "593": ZoneWest, "594": ZoneWest, "595": ZoneWest, "596": ZoneWest,
	"597": ZoneWest, "598": ZoneWest, "599": ZoneWest,
	// AZ, UT, WY, CO, NM
	"800": ZoneCentralWest, "801": ZoneCentralWest, "802": ZoneCentralWest, "803": ZoneCentralWest, "804": ZoneCentralWest, "805": ZoneCentralWest, "806": ZoneCentralWest, "807": ZoneCentralWest,
	"808": ZoneCentralWest, "809": ZoneCentralWest, "810": ZoneCentralWest, "811": ZoneCentralWest, "812": ZoneCentralWest, "813": ZoneCentralWest, "814": ZoneCentralWest, "815": ZoneCentralWest,
	"816": ZoneCentralWest, "820": ZoneCentralWest, "821": ZoneCentralWest, "822": ZoneCentralWest, "823": ZoneCentralWest, "824": ZoneCentralWest, "825": ZoneCentralWest, "826": ZoneCentralWest,
	"827": ZoneCentralWest, "828": ZoneCentralWest, "829": ZoneCentralWest, "830": ZoneCentralWest, "831": ZoneCentralWest, "840": ZoneCentralWest, "841": ZoneCentralWest, "842": ZoneCentralWest,
	"843": ZoneCentralWest, "844": ZoneCentralWest, "845": ZoneCentralWest, "846": ZoneCentralWest, "847": ZoneCentralWest, "850": ZoneCentralWest, "851": ZoneCentralWest, "852": ZoneCentralWest,
	"853": ZoneCentralWest, "855": ZoneCentralWest, "856": ZoneCentralWest, "857": ZoneCentralWest, "859": ZoneCentralWest, "860": ZoneCentralWest, "863": ZoneCentralWest, "864": ZoneCentralWest,
	"865": ZoneCentralWest, "870": ZoneCentralWest, "871": ZoneCentralWest, "872": ZoneCentralWest, "873": ZoneCentralWest, "874": ZoneCentralWest, "875": ZoneCentralWest, "877": ZoneCentralWest,
	"878": ZoneCentralWest, "879": ZoneCentralWest, "880": ZoneCentralWest, "881": ZoneCentralWest, "882": ZoneCentralWest, "883": ZoneCentralWest, "884": ZoneCentralWest, "885": ZoneCentralWest,
	// ND, SD, NE, KS, OK, TX
	"500": ZoneCentral, "501": ZoneCentral, "502": ZoneCentral, "503": ZoneCentral, "504": ZoneCentral, "505": ZoneCentral, "506": ZoneCentral, "507": ZoneCentral,
	"508": ZoneCentral, "509": ZoneCentral, "570": ZoneCentral, "571": ZoneCentral, "572": ZoneCentral, "573": ZoneCentral, "574": ZoneCentral, "575": ZoneCentral,
	"576": ZoneCentral, "577": ZoneCentral, "580": ZoneCentral, "581": ZoneCentral, "582": ZoneCentral, "583": ZoneCentral, "584": ZoneCentral, "585": ZoneCentral,
	"586": ZoneCentral, "587": ZoneCentral, "588": ZoneCentral, "730": ZoneCentral, "731": ZoneCentral, "734": ZoneCentral, "735": ZoneCentral, "736": ZoneCentral,
	"737": ZoneCentral, "738": ZoneCentral, "739": ZoneCentral, "740": ZoneCentral, "741": ZoneCentral, "743": ZoneCentral, "744": ZoneCentral, "745": ZoneCentral,
	"746": ZoneCentral, "747": ZoneCentral, "748": ZoneCentral, "749": ZoneCentral, "750": ZoneCentral, "751": ZoneCentral, "752": ZoneCentral, "753": ZoneCentral,
	"754": ZoneCentral, "755": ZoneCentral, "756": ZoneCentral, "757": ZoneCentral, "758": ZoneCentral, "759": ZoneCentral, "760": ZoneCentral, "761": ZoneCentral,
	"762": ZoneCentral, "763": ZoneCentral, "764": ZoneCentral, "765": ZoneCentral, "766": ZoneCentral, "767": ZoneCentral, "768": ZoneCentral, "769": ZoneCentral,
	"770": ZoneCentral, "771": ZoneCentral, "772": ZoneCentral, "773": ZoneCentral, "774": ZoneCentral, "775": ZoneCentral, "776": ZoneCentral, "777": ZoneCentral,
	"778": ZoneCentral, "779": ZoneCentral, "780": ZoneCentral, "781": ZoneCentral, "782": ZoneCentral, "783": ZoneCentral, "784": ZoneCentral, "785": ZoneCentral,
	"786": ZoneCentral, "787": ZoneCentral, "788": ZoneCentral, "789": ZoneCentral, "790": ZoneCentral, "791": ZoneCentral, "792": ZoneCentral, "793": ZoneCentral,
	"794": ZoneCentral, "795": ZoneCentral, "796": ZoneCentral, "797": ZoneCentral, "798": ZoneCentral, "799": ZoneCentral,
	// MN, IA, MO, AR, WI, IL
	"510": ZoneCentralEast, "511": ZoneCentralEast, "512": ZoneCentralEast, "513": ZoneCentralEast, "514": ZoneCentralEast, "515": ZoneCentralEast, "516": ZoneCentralEast, "520": ZoneCentralEast,
	"521": ZoneCentralEast, "522": ZoneCentralEast, "523": ZoneCentralEast, "524": ZoneCentralEast, "525": ZoneCentralEast, "526": ZoneCentralEast, "527": ZoneCentralEast, "528": ZoneCentralEast,
	"530": ZoneCentralEast, "531": ZoneCentralEast, "532": ZoneCentralEast, "534": ZoneCentralEast, "535": ZoneCentralEast, "537": ZoneCentralEast, "538": ZoneCentralEast, "539": ZoneCentralEast,
	"540": ZoneCentralEast, "541": ZoneCentralEast, "542": ZoneCentralEast, "543": ZoneCentralEast, "544": ZoneCentralEast, "545": ZoneCentralEast, "546": ZoneCentralEast, "547": ZoneCentralEast,
	"548": ZoneCentralEast, "549": ZoneCentralEast, "550": ZoneCentralEast, "551": ZoneCentralEast, "553": ZoneCentralEast, "554": ZoneCentralEast, "555": ZoneCentralEast, "556": ZoneCentralEast,
	"557": ZoneCentralEast, "558": ZoneCentralEast, "559": ZoneCentralEast, "560": ZoneCentralEast, "561": ZoneCentralEast, "562": ZoneCentralEast, "563": ZoneCentralEast, "564": ZoneCentralEast,
	"565": ZoneCentralEast, "566": ZoneCentralEast, "567": ZoneCentralEast, "600": ZoneCentralEast, "601": ZoneCentralEast, "602": ZoneCentralEast, "603": ZoneCentralEast, "604": ZoneCentralEast,
	"605": ZoneCentralEast, "606": ZoneCentralEast, "607": ZoneCentralEast, "608": ZoneCentralEast, "609": ZoneCentralEast, "610": ZoneCentralEast, "611": ZoneCentralEast, "612": ZoneCentralEast,
	"613": ZoneCentralEast, "614": ZoneCentralEast, "615": ZoneCentralEast, "616": ZoneCentralEast, "617": ZoneCentralEast, "618": ZoneCentralEast, "619": ZoneCentralEast, "620": ZoneCentralEast,
	"622": ZoneCentralEast, "623": ZoneCentralEast, "624": ZoneCentralEast, "625": ZoneCentralEast, "626": ZoneCentralEast, "627": ZoneCentralEast, "628": ZoneCentralEast, "629": ZoneCentralEast,
	"630": ZoneCentralEast, "631": ZoneCentralEast, "633": ZoneCentralEast, "634": ZoneCentralEast, "635": ZoneCentralEast, "636": ZoneCentralEast, "637": ZoneCentralEast, "638": ZoneCentralEast,
	"639": ZoneCentralEast, "640": ZoneCentralEast, "641": ZoneCentralEast, "644": ZoneCentralEast, "645": ZoneCentralEast, "646": ZoneCentralEast, "647": ZoneCentralEast, "648": ZoneCentralEast,
	"649": ZoneCentralEast, "650": ZoneCentralEast, "651": ZoneCentralEast, "652": ZoneCentralEast, "653": ZoneCentralEast, "654": ZoneCentralEast, "655": ZoneCentralEast, "656": ZoneCentralEast,
	"657": ZoneCentralEast, "658": ZoneCentralEast, "660": ZoneCentralEast, "661": ZoneCentralEast, "662": ZoneCentralEast, "664": ZoneCentralEast, "665": ZoneCentralEast, "666": ZoneCentralEast,
	"667": ZoneCentralEast, "668": ZoneCentralEast, "716": ZoneCentralEast, "717": ZoneCentralEast, "718": ZoneCentralEast, "719": ZoneCentralEast, "720": ZoneCentralEast, "721": ZoneCentralEast,
	"722": ZoneCentralEast, "723": ZoneCentralEast, "724": ZoneCentralEast, "725": ZoneCentralEast, "726": ZoneCentralEast, "727": ZoneCentralEast, "728": ZoneCentralEast, "729": ZoneCentralEast,
	// LA, MS, AL, GA, FL, SC
	"290": ZoneSoutheast, "291": ZoneSoutheast, "292": ZoneSoutheast, "293": ZoneSoutheast, "294": ZoneSoutheast, "295": ZoneSoutheast, "296": ZoneSoutheast, "297": ZoneSoutheast,
	"298": ZoneSoutheast, "299": ZoneSoutheast, "300": ZoneSoutheast, "301": ZoneSoutheast, "302": ZoneSoutheast, "303": ZoneSoutheast, "304": ZoneSoutheast, "305": ZoneSoutheast,
	"306": ZoneSoutheast, "307": ZoneSoutheast, "308": ZoneSoutheast, "309": ZoneSoutheast, "310": ZoneSoutheast, "311": ZoneSoutheast, "312": ZoneSoutheast, "313": ZoneSoutheast,
	"314": ZoneSoutheast, "315": ZoneSoutheast, "316": ZoneSoutheast, "317": ZoneSoutheast, "318": ZoneSoutheast, "319": ZoneSoutheast, "320": ZoneSoutheast, "321": ZoneSoutheast,
	"322": ZoneSoutheast, "323": ZoneSoutheast, "324": ZoneSoutheast, "325": ZoneSoutheast, "326": ZoneSoutheast, "327": ZoneSoutheast, "328": ZoneSoutheast, "329": ZoneSoutheast,
	"330": ZoneSoutheast, "331": ZoneSoutheast, "332": ZoneSoutheast, "333": ZoneSoutheast, "334": ZoneSoutheast, "335": ZoneSoutheast, "336": ZoneSoutheast, "337": ZoneSoutheast,
	"338": ZoneSoutheast, "339": ZoneSoutheast, "340": ZoneSoutheast, "341": ZoneSoutheast, "342": ZoneSoutheast, "344": ZoneSoutheast, "346": ZoneSoutheast, "347": ZoneSoutheast,
	"349": ZoneSoutheast, "350": ZoneSoutheast, "351": ZoneSoutheast, "352": ZoneSoutheast, "354": ZoneSoutheast, "355": ZoneSoutheast, "356": ZoneSoutheast, "357": ZoneSoutheast,
	"358": ZoneSoutheast, "359": ZoneSoutheast, "360": ZoneSoutheast, "361": ZoneSoutheast, "362": ZoneSoutheast, "363": ZoneSoutheast, "364": ZoneSoutheast, "365": ZoneSoutheast,
	"366": ZoneSoutheast, "367": ZoneSoutheast, "368": ZoneSoutheast, "369": ZoneSoutheast, "370": ZoneSoutheast, "371": ZoneSoutheast, "372": ZoneSoutheast, "373": ZoneSoutheast,
	"374": ZoneSoutheast, "375": ZoneSoutheast, "376": ZoneSoutheast, "377": ZoneSoutheast, "378": ZoneSoutheast, "379": ZoneSoutheast, "380": ZoneSoutheast, "381": ZoneSoutheast,
	"382": ZoneSoutheast, "383": ZoneSoutheast, "384": ZoneSoutheast, "385": ZoneSoutheast, "386": ZoneSoutheast, "387": ZoneSoutheast, "388": ZoneSoutheast, "389": ZoneSoutheast,
	"390": ZoneSoutheast, "391": ZoneSoutheast, "392": ZoneSoutheast, "393": ZoneSoutheast, "394": ZoneSoutheast, "395": ZoneSoutheast, "396": ZoneSoutheast, "397": ZoneSoutheast,
	"398": ZoneSoutheast, "399": ZoneSoutheast, "700": ZoneSoutheast, "701": ZoneSoutheast, "703": ZoneSoutheast, "704": ZoneSoutheast, "705": ZoneSoutheast, "706": ZoneSoutheast,
	"707": ZoneSoutheast, "708": ZoneSoutheast, "710": ZoneSoutheast, "711": ZoneSoutheast, "712": ZoneSoutheast, "713": ZoneSoutheast, "714": ZoneSoutheast,
	// KY, TN, WV, VA, NC
	"230": ZoneMidAtlantic, "231": ZoneMidAtlantic, "232": ZoneMidAtlantic, "233": ZoneMidAtlantic, "234": ZoneMidAtlantic, "235": ZoneMidAtlantic, "236": ZoneMidAtlantic, "237": ZoneMidAtlantic,
	"238": ZoneMidAtlantic, "239": ZoneMidAtlantic, "240": ZoneMidAtlantic, "241": ZoneMidAtlantic, "242": ZoneMidAtlantic, "243": ZoneMidAtlantic, "244": ZoneMidAtlantic, "245": ZoneMidAtlantic,
	"246": ZoneMidAtlantic, "247": ZoneMidAtlantic, "248": ZoneMidAtlantic, "249": ZoneMidAtlantic, "250": ZoneMidAtlantic, "251": ZoneMidAtlantic, "252": ZoneMidAtlantic, "253": ZoneMidAtlantic,
	"254": ZoneMidAtlantic, "255": ZoneMidAtlantic, "256": ZoneMidAtlantic, "257": ZoneMidAtlantic, "258": ZoneMidAtlantic, "259": ZoneMidAtlantic, "260": ZoneMidAtlantic, "261": ZoneMidAtlantic,
	"262": ZoneMidAtlantic, "263": ZoneMidAtlantic, "264": ZoneMidAtlantic, "265": ZoneMidAtlantic, "266": ZoneMidAtlantic, "267": ZoneMidAtlantic, "268": ZoneMidAtlantic, "270": ZoneMidAtlantic,
	"271": ZoneMidAtlantic, "272": ZoneMidAtlantic, "273": ZoneMidAtlantic, "274": ZoneMidAtlantic, "275": ZoneMidAtlantic, "276": ZoneMidAtlantic, "277": ZoneMidAtlantic, "278": ZoneMidAtlantic,
	"279": ZoneMidAtlantic, "280": ZoneMidAtlantic, "281": ZoneMidAtlantic, "282": ZoneMidAtlantic, "283": ZoneMidAtlantic, "284": ZoneMidAtlantic, "285": ZoneMidAtlantic, "286": ZoneMidAtlantic,
	"287": ZoneMidAtlantic, "288": ZoneMidAtlantic, "289": ZoneMidAtlantic, "400": ZoneMidAtlantic, "401": ZoneMidAtlantic, "402": ZoneMidAtlantic, "403": ZoneMidAtlantic, "404": ZoneMidAtlantic,
	"405": ZoneMidAtlantic, "406": ZoneMidAtlantic, "407": ZoneMidAtlantic, "408": ZoneMidAtlantic, "409": ZoneMidAtlantic, "410": ZoneMidAtlantic, "411": ZoneMidAtlantic, "412": ZoneMidAtlantic,
	"413": ZoneMidAtlantic, "414": ZoneMidAtlantic, "415": ZoneMidAtlantic, "416": ZoneMidAtlantic, "417": ZoneMidAtlantic, "418": ZoneMidAtlantic, "420": ZoneMidAtlantic, "421": ZoneMidAtlantic,
	"422": ZoneMidAtlantic, "423": ZoneMidAtlantic, "424": ZoneMidAtlantic, "425": ZoneMidAtlantic, "426": ZoneMidAtlantic, "427": ZoneMidAtlantic, "430": ZoneMidAtlantic, "431": ZoneMidAtlantic,
	"432": ZoneMidAtlantic, "433": ZoneMidAtlantic, "434": ZoneMidAtlantic, "435": ZoneMidAtlantic, "436": ZoneMidAtlantic, "437": ZoneMidAtlantic, "438": ZoneMidAtlantic, "439": ZoneMidAtlantic,
	"440": ZoneMidAtlantic, "441": ZoneMidAtlantic, "442": ZoneMidAtlantic, "443": ZoneMidAtlantic, "444": ZoneMidAtlantic, "445": ZoneMidAtlantic, "446": ZoneMidAtlantic, "447": ZoneMidAtlantic,
	"448": ZoneMidAtlantic, "449": ZoneMidAtlantic, "450": ZoneMidAtlantic, "451": ZoneMidAtlantic, "452": ZoneMidAtlantic, "453": ZoneMidAtlantic, "454": ZoneMidAtlantic, "455": ZoneMidAtlantic,
	"456": ZoneMidAtlantic, "457": ZoneMidAtlantic, "458": ZoneMidAtlantic, "459": ZoneMidAtlantic, "460": ZoneMidAtlantic, "461": ZoneMidAtlantic, "462": ZoneMidAtlantic, "463": ZoneMidAtlantic,
	"464": ZoneMidAtlantic, "465": ZoneMidAtlantic, "466": ZoneMidAtlantic, "467": ZoneMidAtlantic, "468": ZoneMidAtlantic, "469": ZoneMidAtlantic, "470": ZoneMidAtlantic, "471": ZoneMidAtlantic,
	"472": ZoneMidAtlantic, "473": ZoneMidAtlantic, "474": ZoneMidAtlantic, "475": ZoneMidAtlantic, "476": ZoneMidAtlantic, "477": ZoneMidAtlantic, "478": ZoneMidAtlantic, "479": ZoneMidAtlantic,
	// PA, NJ, NY, CT, RI, MA, VT, NH, ME, DE, MD, DC
	"010": ZoneNortheast, "011": ZoneNortheast, "012": ZoneNortheast, "013": ZoneNortheast, "014": ZoneNortheast, "015": ZoneNortheast, "016": ZoneNortheast, "017": ZoneNortheast,
	"018": ZoneNortheast, "019": ZoneNortheast, "020": ZoneNortheast, "021": ZoneNortheast, "022": ZoneNortheast, "023": ZoneNortheast, "024": ZoneNortheast, "025": ZoneNortheast,
	"026": ZoneNortheast, "027": ZoneNortheast, "028": ZoneNortheast, "029": ZoneNortheast, "030": ZoneNortheast, "031": ZoneNortheast, "032": ZoneNortheast, "033": ZoneNortheast,
	"034": ZoneNortheast, "035": ZoneNortheast, "036": ZoneNortheast, "037": ZoneNortheast, "038": ZoneNortheast, "039": ZoneNortheast, "040": ZoneNortheast, "041": ZoneNortheast,
	"042": ZoneNortheast, "043": ZoneNortheast, "044": ZoneNortheast, "045": ZoneNortheast, "046": ZoneNortheast, "047": ZoneNortheast, "048": ZoneNortheast, "049": ZoneNortheast,
	"050": ZoneNortheast, "051": ZoneNortheast, "052": ZoneNortheast, "053": ZoneNortheast, "054": ZoneNortheast, "055": ZoneNortheast, "056": ZoneNortheast, "057": ZoneNortheast,
	"058": ZoneNortheast, "059": ZoneNortheast, "060": ZoneNortheast, "061": ZoneNortheast, "062": ZoneNortheast, "063": ZoneNortheast, "064": ZoneNortheast, "065": ZoneNortheast,
	"066": ZoneNortheast, "067": ZoneNortheast, "068": ZoneNortheast, "069": ZoneNortheast, "070": ZoneNortheast, "071": ZoneNortheast, "072": ZoneNortheast, "073": ZoneNortheast,
	"074": ZoneNortheast, "075": ZoneNortheast, "076": ZoneNortheast, "077": ZoneNortheast, "078": ZoneNortheast, "079": ZoneNortheast, "080": ZoneNortheast, "081": ZoneNortheast,
	"082": ZoneNortheast, "083": ZoneNortheast, "084": ZoneNortheast, "085": ZoneNortheast, "086": ZoneNortheast, "087": ZoneNortheast, "088": ZoneNortheast, "089": ZoneNortheast,
	"090": ZoneNortheast, "091": ZoneNortheast, "092": ZoneNortheast, "093": ZoneNortheast, "094": ZoneNortheast, "095": ZoneNortheast, "096": ZoneNortheast, "097": ZoneNortheast,
	"098": ZoneNortheast, "099": ZoneNortheast, "100": ZoneNortheast, "101": ZoneNortheast, "102": ZoneNortheast, "103": ZoneNortheast, "104": ZoneNortheast, "105": ZoneNortheast,
	"106": ZoneNortheast, "107": ZoneNortheast, "108": ZoneNortheast, "109": ZoneNortheast, "110": ZoneNortheast, "111": ZoneNortheast, "112": ZoneNortheast, "113": ZoneNortheast,
	"114": ZoneNortheast, "115": ZoneNortheast, "116": ZoneNortheast, "117": ZoneNortheast, "118": ZoneNortheast, "119": ZoneNortheast, "120": ZoneNortheast, "121": ZoneNortheast,
	"122": ZoneNortheast, "123": ZoneNortheast, "124": ZoneNortheast, "125": ZoneNortheast, "126": ZoneNortheast, "127": ZoneNortheast, "128": ZoneNortheast, "129": ZoneNortheast,
	"130": ZoneNortheast, "131": ZoneNortheast, "132": ZoneNortheast, "133": ZoneNortheast, "134": ZoneNortheast, "135": ZoneNortheast, "136": ZoneNortheast, "137": ZoneNortheast,
	"138": ZoneNortheast, "139": ZoneNortheast, "140": ZoneNortheast, "141": ZoneNortheast, "142": ZoneNortheast, "143": ZoneNortheast, "144": ZoneNortheast, "145": ZoneNortheast,
	"146": ZoneNortheast, "147": ZoneNortheast, "148": ZoneNortheast, "149": ZoneNortheast, "150": ZoneNortheast, "151": ZoneNortheast, "152": ZoneNortheast, "153": ZoneNortheast,
	"154": ZoneNortheast, "155": ZoneNortheast, "156": ZoneNortheast, "157": ZoneNortheast, "158": ZoneNortheast, "159": ZoneNortheast, "160": ZoneNortheast, "161": ZoneNortheast,
	"162": ZoneNortheast, "163": ZoneNortheast, "164": ZoneNortheast, "165": ZoneNortheast, "166": ZoneNortheast, "167": ZoneNortheast, "168": ZoneNortheast, "169": ZoneNortheast,
	"170": ZoneNortheast, "171": ZoneNortheast, "172": ZoneNortheast, "173": ZoneNortheast, "174": ZoneNortheast, "175": ZoneNortheast, "176": ZoneNortheast, "177": ZoneNortheast,
	"178": ZoneNortheast, "179": ZoneNortheast, "180": ZoneNortheast, "181": ZoneNortheast, "182": ZoneNortheast, "183": ZoneNortheast, "184": ZoneNortheast, "185": ZoneNortheast,
	"186": ZoneNortheast, "187": ZoneNortheast, "188": ZoneNortheast, "189": ZoneNortheast, "190": ZoneNortheast, "191": ZoneNortheast, "192": ZoneNortheast, "193": ZoneNortheast,
	"194": ZoneNortheast, "195": ZoneNortheast, "196": ZoneNortheast, "197": ZoneNortheast, "198": ZoneNortheast, "199": ZoneNortheast, "200": ZoneNortheast, "201": ZoneNortheast,
	"202": ZoneNortheast, "203": ZoneNortheast, "204": ZoneNortheast, "205": ZoneNortheast, "206": ZoneNortheast, "207": ZoneNortheast, "208": ZoneNortheast, "209": ZoneNortheast,
	"210": ZoneNortheast, "211": ZoneNortheast, "212": ZoneNortheast, "214": ZoneNortheast, "215": ZoneNortheast, "216": ZoneNortheast, "217": ZoneNortheast, "218": ZoneNortheast,
	"219": ZoneNortheast, "220": ZoneNortheast, "221": ZoneNortheast, "222": ZoneNortheast, "223": ZoneNortheast, "224": ZoneNortheast, "225": ZoneNortheast, "226": ZoneNortheast,
	"227": ZoneNortheast, "228": ZoneNortheast, "229": ZoneNortheast,
}
