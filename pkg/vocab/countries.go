package vocab

// Country is a country or US state label.
type Country string

const (
	CountryUnitedStatesOfAmericaUSA     Country = "United States of America (USA)"
	CountryAfghanistan                  Country = "Afghanistan"
	CountryAlbania                      Country = "Albania"
	CountryAlgeria                      Country = "Algeria"
	CountryAndorra                      Country = "Andorra"
	CountryAngola                       Country = "Angola"
	CountryAntiguaAndBarbuda            Country = "Antigua and Barbuda"
	CountryArgentina                    Country = "Argentina"
	CountryArmenia                      Country = "Armenia"
	CountryAustralia                    Country = "Australia"
	CountryAustria                      Country = "Austria"
	CountryAzerbaijan                   Country = "Azerbaijan"
	CountryBahamas                      Country = "Bahamas"
	CountryBahrain                      Country = "Bahrain"
	CountryBangladesh                   Country = "Bangladesh"
	CountryBarbados                     Country = "Barbados"
	CountryBelarus                      Country = "Belarus"
	CountryBelgium                      Country = "Belgium"
	CountryBelize                       Country = "Belize"
	CountryBenin                        Country = "Benin"
	CountryBhutan                       Country = "Bhutan"
	CountryBolivia                      Country = "Bolivia"
	CountryBosniaAndHerzegovina         Country = "Bosnia and Herzegovina"
	CountryBotswana                     Country = "Botswana"
	CountryBrazil                       Country = "Brazil"
	CountryBrunei                       Country = "Brunei"
	CountryBulgaria                     Country = "Bulgaria"
	CountryBurkinaFaso                  Country = "Burkina Faso"
	CountryBurundi                      Country = "Burundi"
	CountryCaboVerde                    Country = "Cabo Verde"
	CountryCambodia                     Country = "Cambodia"
	CountryCameroon                     Country = "Cameroon"
	CountryCanada                       Country = "Canada"
	CountryCentralAfricanRepublicCAR    Country = "Central African Republic (CAR)"
	CountryChad                         Country = "Chad"
	CountryChile                        Country = "Chile"
	CountryChina                        Country = "China"
	CountryColombia                     Country = "Colombia"
	CountryComoros                      Country = "Comoros"
	CountryDemocraticRepublicOfTheCongo Country = "Democratic Republic of the Congo"
	CountryRepublicOfTheCongo           Country = "Republic of the Congo"
	CountryCostaRica                    Country = "Costa Rica"
	CountryCroatia                      Country = "Croatia"
	CountryCuba                         Country = "Cuba"
	CountryCyprus                       Country = "Cyprus"
	CountryCzechRepublic                Country = "Czech Republic"
	CountryDenmark                      Country = "Denmark"
	CountryDjibouti                     Country = "Djibouti"
	CountryDominica                     Country = "Dominica"
	CountryDominicanRepublic            Country = "Dominican Republic"
	CountryEastTimorTimorLeste          Country = "East Timor (Timor-Leste)"
	CountryEcuador                      Country = "Ecuador"
	CountryEgypt                        Country = "Egypt"
	CountryElSalvador                   Country = "El Salvador"
	CountryEquatorialGuinea             Country = "Equatorial Guinea"
	CountryEritrea                      Country = "Eritrea"
	CountryEstonia                      Country = "Estonia"
	CountryEswatini                     Country = "Eswatini"
	CountryEthiopia                     Country = "Ethiopia"
	CountryFiji                         Country = "Fiji"
	CountryFinland                      Country = "Finland"
	CountryFrance                       Country = "France"
	CountryGabon                        Country = "Gabon"
	CountryGambia                       Country = "Gambia"
	CountryGeorgia                      Country = "Georgia"
	CountryGermany                      Country = "Germany"
	CountryGhana                        Country = "Ghana"
	CountryGreece                       Country = "Greece"
	CountryGrenada                      Country = "Grenada"
	CountryGuatemala                    Country = "Guatemala"
	CountryGuinea                       Country = "Guinea"
	CountryGuineaBissau                 Country = "Guinea-Bissau"
	CountryGuyana                       Country = "Guyana"
	CountryHaiti                        Country = "Haiti"
	CountryHonduras                     Country = "Honduras"
	CountryHungary                      Country = "Hungary"
	CountryIceland                      Country = "Iceland"
	CountryIndia                        Country = "India"
	CountryIndonesia                    Country = "Indonesia"
	CountryIran                         Country = "Iran"
	CountryIraq                         Country = "Iraq"
	CountryIreland                      Country = "Ireland"
	CountryIsrael                       Country = "Israel"
	CountryItaly                        Country = "Italy"
	CountryIvoryCoast                   Country = "Ivory Coast"
	CountryJamaica                      Country = "Jamaica"
	CountryJapan                        Country = "Japan"
	CountryJordan                       Country = "Jordan"
	CountryKazakhstan                   Country = "Kazakhstan"
	CountryKenya                        Country = "Kenya"
	CountryKiribati                     Country = "Kiribati"
	CountryKosovo                       Country = "Kosovo"
	CountryKuwait                       Country = "Kuwait"
	CountryKyrgyzstan                   Country = "Kyrgyzstan"
	CountryLaos                         Country = "Laos"
	CountryLatvia                       Country = "Latvia"
	CountryLebanon                      Country = "Lebanon"
	CountryLesotho                      Country = "Lesotho"
	CountryLiberia                      Country = "Liberia"
	CountryLibya                        Country = "Libya"
	CountryLiechtenstein                Country = "Liechtenstein"
	CountryLithuania                    Country = "Lithuania"
	CountryLuxembourg                   Country = "Luxembourg"
	CountryMadagascar                   Country = "Madagascar"
	CountryMalawi                       Country = "Malawi"
	CountryMalaysia                     Country = "Malaysia"
	CountryMaldives                     Country = "Maldives"
	CountryMali                         Country = "Mali"
	CountryMalta                        Country = "Malta"
	CountryMarshallIslands              Country = "Marshall Islands"
	CountryMauritania                   Country = "Mauritania"
	CountryMauritius                    Country = "Mauritius"
	CountryMexico                       Country = "Mexico"
	CountryMicronesia                   Country = "Micronesia"
	CountryMoldova                      Country = "Moldova"
	CountryMonaco                       Country = "Monaco"
	CountryMongolia                     Country = "Mongolia"
	CountryMontenegro                   Country = "Montenegro"
	CountryMorocco                      Country = "Morocco"
	CountryMozambique                   Country = "Mozambique"
	CountryMyanmarBurma                 Country = "Myanmar (Burma)"
	CountryNamibia                      Country = "Namibia"
	CountryNauru                        Country = "Nauru"
	CountryNepal                        Country = "Nepal"
	CountryNetherlands                  Country = "Netherlands"
	CountryNewZealand                   Country = "New Zealand"
	CountryNicaragua                    Country = "Nicaragua"
	CountryNiger                        Country = "Niger"
	CountryNigeria                      Country = "Nigeria"
	CountryNorthKorea                   Country = "North Korea"
	CountryNorthMacedonia               Country = "North Macedonia"
	CountryNorway                       Country = "Norway"
	CountryOman                         Country = "Oman"
	CountryPakistan                     Country = "Pakistan"
	CountryPalau                        Country = "Palau"
	CountryPalestine                    Country = "Palestine"
	CountryPanama                       Country = "Panama"
	CountryPapuaNewGuinea               Country = "Papua New Guinea"
	CountryParaguay                     Country = "Paraguay"
	CountryPeru                         Country = "Peru"
	CountryPhilippines                  Country = "Philippines"
	CountryPoland                       Country = "Poland"
	CountryPortugal                     Country = "Portugal"
	CountryQatar                        Country = "Qatar"
	CountryRomania                      Country = "Romania"
	CountryRussia                       Country = "Russia"
	CountryRwanda                       Country = "Rwanda"
	CountrySaintKittsAndNevis           Country = "Saint Kitts and Nevis"
	CountrySaintLucia                   Country = "Saint Lucia"
	CountrySaintVincentAndTheGrenadines Country = "Saint Vincent and the Grenadines"
	CountrySamoa                        Country = "Samoa"
	CountrySanMarino                    Country = "San Marino"
	CountrySaoTomeAndPrincipe           Country = "Sao Tome and Principe"
	CountrySaudiArabia                  Country = "Saudi Arabia"
	CountrySenegal                      Country = "Senegal"
	CountrySerbia                       Country = "Serbia"
	CountrySeychelles                   Country = "Seychelles"
	CountrySierraLeone                  Country = "Sierra Leone"
	CountrySingapore                    Country = "Singapore"
	CountrySlovakia                     Country = "Slovakia"
	CountrySlovenia                     Country = "Slovenia"
	CountrySolomonIslands               Country = "Solomon Islands"
	CountrySomalia                      Country = "Somalia"
	CountrySouthAfrica                  Country = "South Africa"
	CountrySouthKorea                   Country = "South Korea"
	CountrySouthSudan                   Country = "South Sudan"
	CountrySpain                        Country = "Spain"
	CountrySriLanka                     Country = "Sri Lanka"
	CountrySudan                        Country = "Sudan"
	CountrySuriname                     Country = "Suriname"
	CountrySweden                       Country = "Sweden"
	CountrySwitzerland                  Country = "Switzerland"
	CountrySyria                        Country = "Syria"
	CountryTaiwan                       Country = "Taiwan"
	CountryTajikistan                   Country = "Tajikistan"
	CountryTanzania                     Country = "Tanzania"
	CountryThailand                     Country = "Thailand"
	CountryTogo                         Country = "Togo"
	CountryTonga                        Country = "Tonga"
	CountryTrinidadAndTobago            Country = "Trinidad and Tobago"
	CountryTunisia                      Country = "Tunisia"
	CountryTurkey                       Country = "Turkey"
	CountryTurkmenistan                 Country = "Turkmenistan"
	CountryTuvalu                       Country = "Tuvalu"
	CountryUganda                       Country = "Uganda"
	CountryUkraine                      Country = "Ukraine"
	CountryUnitedArabEmiratesUAE        Country = "United Arab Emirates (UAE)"
	CountryUnitedKingdomUK              Country = "United Kingdom (UK)"
	CountryUruguay                      Country = "Uruguay"
	CountryUzbekistan                   Country = "Uzbekistan"
	CountryVanuatu                      Country = "Vanuatu"
	CountryVaticanCityHolySee           Country = "Vatican City (Holy See)"
	CountryVenezuela                    Country = "Venezuela"
	CountryVietnam                      Country = "Vietnam"
	CountryYemen                        Country = "Yemen"
	CountryZambia                       Country = "Zambia"
	CountryZimbabwe                     Country = "Zimbabwe"
	CountryAlabama                      Country = "Alabama"
	CountryAlaska                       Country = "Alaska"
	CountryArizona                      Country = "Arizona"
	CountryArkansas                     Country = "Arkansas"
	CountryCalifornia                   Country = "California"
	CountryColorado                     Country = "Colorado"
	CountryConnecticut                  Country = "Connecticut"
	CountryDelaware                     Country = "Delaware"
	CountryFlorida                      Country = "Florida"
	CountryHawaii                       Country = "Hawaii"
	CountryIdaho                        Country = "Idaho"
	CountryIllinois                     Country = "Illinois"
	CountryIndiana                      Country = "Indiana"
	CountryIowa                         Country = "Iowa"
	CountryKansas                       Country = "Kansas"
	CountryKentucky                     Country = "Kentucky"
	CountryLouisiana                    Country = "Louisiana"
	CountryMaine                        Country = "Maine"
	CountryMaryland                     Country = "Maryland"
	CountryMassachusetts                Country = "Massachusetts"
	CountryMichigan                     Country = "Michigan"
	CountryMinnesota                    Country = "Minnesota"
	CountryMississippi                  Country = "Mississippi"
	CountryMissouri                     Country = "Missouri"
	CountryMontana                      Country = "Montana"
	CountryNebraska                     Country = "Nebraska"
	CountryNevada                       Country = "Nevada"
	CountryNewHampshire                 Country = "New Hampshire"
	CountryNewJersey                    Country = "New Jersey"
	CountryNewMexico                    Country = "New Mexico"
	CountryNewYork                      Country = "New York"
	CountryNorthCarolina                Country = "North Carolina"
	CountryNorthDakota                  Country = "North Dakota"
	CountryOhio                         Country = "Ohio"
	CountryOklahoma                     Country = "Oklahoma"
	CountryOregon                       Country = "Oregon"
	CountryPennsylvania                 Country = "Pennsylvania"
	CountryRhodeIsland                  Country = "Rhode Island"
	CountrySouthCarolina                Country = "South Carolina"
	CountrySouthDakota                  Country = "South Dakota"
	CountryTennessee                    Country = "Tennessee"
	CountryTexas                        Country = "Texas"
	CountryUtah                         Country = "Utah"
	CountryVermont                      Country = "Vermont"
	CountryVirginia                     Country = "Virginia"
	CountryWashington                   Country = "Washington"
	CountryWestVirginia                 Country = "West Virginia"
	CountryWisconsin                    Country = "Wisconsin"
	CountryWyoming                      Country = "Wyoming"
)

// CountryGeorgiaUS names the US state. It shares its label with the country
// and therefore appears once in the vocabulary.
const CountryGeorgiaUS = CountryGeorgia

var countries = lazy("countries", CountryUnitedStatesOfAmericaUSA,
	CountryUnitedStatesOfAmericaUSA,
	CountryAfghanistan,
	CountryAlbania,
	CountryAlgeria,
	CountryAndorra,
	CountryAngola,
	CountryAntiguaAndBarbuda,
	CountryArgentina,
	CountryArmenia,
	CountryAustralia,
	CountryAustria,
	CountryAzerbaijan,
	CountryBahamas,
	CountryBahrain,
	CountryBangladesh,
	CountryBarbados,
	CountryBelarus,
	CountryBelgium,
	CountryBelize,
	CountryBenin,
	CountryBhutan,
	CountryBolivia,
	CountryBosniaAndHerzegovina,
	CountryBotswana,
	CountryBrazil,
	CountryBrunei,
	CountryBulgaria,
	CountryBurkinaFaso,
	CountryBurundi,
	CountryCaboVerde,
	CountryCambodia,
	CountryCameroon,
	CountryCanada,
	CountryCentralAfricanRepublicCAR,
	CountryChad,
	CountryChile,
	CountryChina,
	CountryColombia,
	CountryComoros,
	CountryDemocraticRepublicOfTheCongo,
	CountryRepublicOfTheCongo,
	CountryCostaRica,
	CountryCroatia,
	CountryCuba,
	CountryCyprus,
	CountryCzechRepublic,
	CountryDenmark,
	CountryDjibouti,
	CountryDominica,
	CountryDominicanRepublic,
	CountryEastTimorTimorLeste,
	CountryEcuador,
	CountryEgypt,
	CountryElSalvador,
	CountryEquatorialGuinea,
	CountryEritrea,
	CountryEstonia,
	CountryEswatini,
	CountryEthiopia,
	CountryFiji,
	CountryFinland,
	CountryFrance,
	CountryGabon,
	CountryGambia,
	CountryGeorgia,
	CountryGermany,
	CountryGhana,
	CountryGreece,
	CountryGrenada,
	CountryGuatemala,
	CountryGuinea,
	CountryGuineaBissau,
	CountryGuyana,
	CountryHaiti,
	CountryHonduras,
	CountryHungary,
	CountryIceland,
	CountryIndia,
	CountryIndonesia,
	CountryIran,
	CountryIraq,
	CountryIreland,
	CountryIsrael,
	CountryItaly,
	CountryIvoryCoast,
	CountryJamaica,
	CountryJapan,
	CountryJordan,
	CountryKazakhstan,
	CountryKenya,
	CountryKiribati,
	CountryKosovo,
	CountryKuwait,
	CountryKyrgyzstan,
	CountryLaos,
	CountryLatvia,
	CountryLebanon,
	CountryLesotho,
	CountryLiberia,
	CountryLibya,
	CountryLiechtenstein,
	CountryLithuania,
	CountryLuxembourg,
	CountryMadagascar,
	CountryMalawi,
	CountryMalaysia,
	CountryMaldives,
	CountryMali,
	CountryMalta,
	CountryMarshallIslands,
	CountryMauritania,
	CountryMauritius,
	CountryMexico,
	CountryMicronesia,
	CountryMoldova,
	CountryMonaco,
	CountryMongolia,
	CountryMontenegro,
	CountryMorocco,
	CountryMozambique,
	CountryMyanmarBurma,
	CountryNamibia,
	CountryNauru,
	CountryNepal,
	CountryNetherlands,
	CountryNewZealand,
	CountryNicaragua,
	CountryNiger,
	CountryNigeria,
	CountryNorthKorea,
	CountryNorthMacedonia,
	CountryNorway,
	CountryOman,
	CountryPakistan,
	CountryPalau,
	CountryPalestine,
	CountryPanama,
	CountryPapuaNewGuinea,
	CountryParaguay,
	CountryPeru,
	CountryPhilippines,
	CountryPoland,
	CountryPortugal,
	CountryQatar,
	CountryRomania,
	CountryRussia,
	CountryRwanda,
	CountrySaintKittsAndNevis,
	CountrySaintLucia,
	CountrySaintVincentAndTheGrenadines,
	CountrySamoa,
	CountrySanMarino,
	CountrySaoTomeAndPrincipe,
	CountrySaudiArabia,
	CountrySenegal,
	CountrySerbia,
	CountrySeychelles,
	CountrySierraLeone,
	CountrySingapore,
	CountrySlovakia,
	CountrySlovenia,
	CountrySolomonIslands,
	CountrySomalia,
	CountrySouthAfrica,
	CountrySouthKorea,
	CountrySouthSudan,
	CountrySpain,
	CountrySriLanka,
	CountrySudan,
	CountrySuriname,
	CountrySweden,
	CountrySwitzerland,
	CountrySyria,
	CountryTaiwan,
	CountryTajikistan,
	CountryTanzania,
	CountryThailand,
	CountryTogo,
	CountryTonga,
	CountryTrinidadAndTobago,
	CountryTunisia,
	CountryTurkey,
	CountryTurkmenistan,
	CountryTuvalu,
	CountryUganda,
	CountryUkraine,
	CountryUnitedArabEmiratesUAE,
	CountryUnitedKingdomUK,
	CountryUruguay,
	CountryUzbekistan,
	CountryVanuatu,
	CountryVaticanCityHolySee,
	CountryVenezuela,
	CountryVietnam,
	CountryYemen,
	CountryZambia,
	CountryZimbabwe,
	CountryAlabama,
	CountryAlaska,
	CountryArizona,
	CountryArkansas,
	CountryCalifornia,
	CountryColorado,
	CountryConnecticut,
	CountryDelaware,
	CountryFlorida,
	CountryHawaii,
	CountryIdaho,
	CountryIllinois,
	CountryIndiana,
	CountryIowa,
	CountryKansas,
	CountryKentucky,
	CountryLouisiana,
	CountryMaine,
	CountryMaryland,
	CountryMassachusetts,
	CountryMichigan,
	CountryMinnesota,
	CountryMississippi,
	CountryMissouri,
	CountryMontana,
	CountryNebraska,
	CountryNevada,
	CountryNewHampshire,
	CountryNewJersey,
	CountryNewMexico,
	CountryNewYork,
	CountryNorthCarolina,
	CountryNorthDakota,
	CountryOhio,
	CountryOklahoma,
	CountryOregon,
	CountryPennsylvania,
	CountryRhodeIsland,
	CountrySouthCarolina,
	CountrySouthDakota,
	CountryTennessee,
	CountryTexas,
	CountryUtah,
	CountryVermont,
	CountryVirginia,
	CountryWashington,
	CountryWestVirginia,
	CountryWisconsin,
	CountryWyoming,
)

// Countries returns the country and US state vocabulary.
// Fallback: United States of America (USA).
func Countries() *Vocabulary[Country] { return countries() }

func (c *Country) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*c = Country(label)
	return err
}
