package bank

// Branch-code tables for French IBANs. The general table covers national
// networks, online banks and regional institutions; the Crédit Agricole
// table lists the caisses régionales. Codes reused across institutions over
// time were frozen to the name in production use, with the Crédit Agricole
// entry winning when both tables carry the same code (see bankNames).

// generalBankCodes maps branch codes of non-Crédit Agricole institutions.
var generalBankCodes = map[string]string{
	"10068": "Crédit Mutuel Anjou",
	"10096": "Crédit Mutuel Océan",
	"10107": "Banque Populaire",
	"10108": "BNP Paribas",
	"10138": "Crédit Mutuel Maine-Anjou",
	"10207": "Crédit Mutuel",
	"10278": "Crédit Mutuel",
	"10479": "Banque Kolb",
	"10518": "Crédit Mutuel Île-de-France",
	"10529": "Banque Nuger",
	"10548": "Crédit Mutuel Centre",
	"10589": "Banque Laydernier",
	"10609": "Banque Rhône-Alpes",
	"10695": "Caisse d'Épargne",
	"10738": "Crédit Mutuel Loire-Atlantique Centre Ouest",
	"10758": "Crédit Mutuel Nord Europe",
	"10778": "Caisse d'Épargne Île-de-France",
	"10798": "Crédit Mutuel Dauphiné-Vivarais",
	"10838": "Crédit Mutuel Midi-Atlantique",
	"10868": "Banque Tarneaud",
	"10878": "Crédit Mutuel Savoie-Mont Blanc",
	"10906": "CIC",
	"10907": "BNP Paribas",
	"11027": "CIC Lyonnaise de Banque",
	"11315": "Caisse d'Épargne Loire-Centre",
	"11455": "Banque Populaire Bourgogne Franche-Comté",
	"11516": "CIC Est",
	"11706": "CIC Sud Ouest",
	"12135": "Caisse d'Épargne Provence-Alpes-Corse",
	"12455": "Banque Populaire Grand Ouest",
	"12548": "Boursorama",
	"12739": "Crédit Foncier",
	"12755": "Caisse d'Épargne Midi-Pyrénées",
	"12968": "Nickel",
	"13134": "Banque Accord",
	"13135": "Banque Populaire Méditerranée",
	"13357": "Banque Populaire Auvergne Rhône Alpes",
	"13506": "Crédit du Nord",
	"13625": "Caisse d'Épargne Bretagne-Pays de Loire",
	"13698": "Fortuneo",
	"13715": "Caisse d'Épargne Côte d'Azur",
	"13825": "Banque Populaire Occitane",
	"14445": "Banque Populaire Rives de Paris",
	"14559": "Banque Populaire Val de France",
	"15135": "Banque Casino",
	"15589": "Banque Palatine",
	"16515": "Caisse d'Épargne Grand Est Europe",
	"16798": "ING Direct",
	"16958": "Revolut",
	"17068": "Banque Populaire Alsace Lorraine Champagne",
	"17515": "Qonto",
	"17906": "Caisse d'Épargne Rhône Alpes",
	"18206": "N26",
	"18315": "Société Marseillaise de Crédit",
	"18415": "Banque Populaire",
	"20041": "La Banque Postale",
	"30001": "BNP Paribas",
	"30002": "LCL - Le Crédit Lyonnais",
	"30003": "Société Générale",
	"30004": "BNP Paribas",
	"30005": "LCL",
	"30006": "HSBC France",
	"30007": "Barclays",
	"30027": "Crédit Coopératif",
	"30056": "BRED",
	"30066": "CIC",
}

// creditAgricoleCodes maps branch codes of the Crédit Agricole caisses régionales.
var creditAgricoleCodes = map[string]string{
	"10206": "Crédit Agricole Nord de France",
	"11006": "Crédit Agricole Champagne-Bourgogne",
	"11206": "Crédit Agricole Brie Picardie",
	"11306": "Crédit Agricole Alpes Provence",
	"11315": "Crédit Agricole",
	"11706": "Crédit Agricole Charente Périgord",
	"12006": "Crédit Agricole Corse",
	"12206": "Crédit Agricole Morbihan",
	"12406": "Crédit Agricole Charente-Maritime",
	"12506": "Crédit Agricole Loire Océan",
	"12906": "Crédit Agricole Finistère",
	"13106": "Crédit Agricole Alpes Provence",
	"13206": "Crédit Agricole Midi-Pyrénées",
	"13306": "Crédit Agricole Aquitaine",
	"13335": "Crédit Agricole",
	"13506": "Crédit Agricole Languedoc",
	"13606": "Crédit Agricole Centre Ouest",
	"13906": "Crédit Agricole Centre-Est",
	"14206": "Crédit Agricole Normandie",
	"14406": "Crédit Agricole Ille-et-Vilaine",
	"14506": "Crédit Agricole Centre Loire",
	"14706": "Crédit Agricole Atlantique Vendée",
	"14806": "Crédit Agricole Languedoc",
	"15206": "Crédit Agricole Savoie Mont Blanc",
	"16006": "Crédit Agricole Morbihan",
	"16106": "Crédit Agricole Deux-Sèvres",
	"16206": "Crédit Agricole Franche-Comté",
	"16606": "Crédit Agricole Normandie-Seine",
	"16706": "Crédit Agricole Sud Rhône Alpes",
	"16806": "Crédit Agricole Cantal Auvergne",
	"16906": "Crédit Agricole Pyrénées Gascogne",
	"17106": "Crédit Agricole Loire Haute-Loire",
	"17206": "Crédit Agricole Alsace Vosges",
	"17306": "Crédit Agricole Sud Méditerranée",
	"17606": "Crédit Agricole Lorraine",
	"17806": "Crédit Agricole Centre-Est",
	"17906": "Crédit Agricole Anjou Maine",
	"18106": "Crédit Agricole Touraine Poitou",
	"18206": "Crédit Agricole Nord-Est",
	"18306": "Crédit Agricole Normandie",
	"18406": "Crédit Agricole Val de France",
	"18706": "Crédit Agricole Île-de-France",
	"19106": "Crédit Agricole Centre France",
	"19406": "Crédit Agricole Provence Côte d'Azur",
	"19906": "Crédit Agricole Côtes d'Armor",
	"30002": "Crédit Agricole",
}
