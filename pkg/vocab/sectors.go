package vocab

import (
	"bytes"
	"encoding/json"
)

// Sector is a business sector label.
type Sector string

const (
	SectorFintech                     Sector = "Fintech"
	SectorHealthtech                  Sector = "Healthtech"
	SectorSaaS                        Sector = "SaaS (Software as a Service)"
	SectorECommerce                   Sector = "E-commerce"
	SectorAIAndML                     Sector = "Artificial Intelligence (AI) and Machine Learning (ML)"
	SectorEdtech                      Sector = "Edtech"
	SectorCybersecurity               Sector = "Cybersecurity"
	SectorBiotechnology               Sector = "Biotechnology"
	SectorInternetOfThings            Sector = "Internet of Things (IoT)"
	SectorCleanEnergy                 Sector = "Clean Energy and Sustainability"
	SectorProptech                    Sector = "Proptech (Property Technology)"
	SectorARAndVR                     Sector = "Augmented Reality (AR) and Virtual Reality (VR)"
	SectorFoodtech                    Sector = "Foodtech"
	SectorAutonomousVehicles          Sector = "Autonomous Vehicles"
	SectorRobotics                    Sector = "Robotics"
	SectorAgtech                      Sector = "Agtech (Agriculture Technology)"
	SectorInsurtech                   Sector = "Insurtech (Insurance Technology)"
	SectorMedtech                     Sector = "Medtech (Medical Technology)"
	SectorBlockchain                  Sector = "Blockchain and Cryptocurrency"
	SectorDigitalHealth               Sector = "Digital Health"
	SectorDesign                      Sector = "Design"
	SectorMarTech                     Sector = "MarTech (Marketing Technology)"
	SectorHRTech                      Sector = "HRTech (Human Resources Technology)"
	SectorTravelAndTourism            Sector = "Travel and Tourism Technology"
	SectorEntertainmentAndMedia       Sector = "Entertainment and Media Technology"
	SectorRetailAndConsumerGoods      Sector = "Retail and Consumer Goods"
	SectorLegal                       Sector = "Legal"
	SectorSportsTech                  Sector = "SportsTech"
	SectorFashion                     Sector = "Fashion"
	SectorAdTech                      Sector = "AdTech (Advertising Technology)"
	SectorGamingAndEsports            Sector = "Gaming and Esports"
	SectorManufacturing               Sector = "Manufacturing and Industrial Automation"
	SectorBankingAndFinancialServices Sector = "Banking and Financial Services"
	SectorConstructionAndEngineering  Sector = "Construction and Engineering"
	SectorRealEstate                  Sector = "Real Estate"
	SectorEventPlanning               Sector = "Event Planning"
	SectorConsultingServices          Sector = "Consulting Services"
	SectorContentCreation             Sector = "Content Creation"
	SectorOther                       Sector = "Other"
)

var sectors = lazy("sectors", SectorOther,
	SectorFintech,
	SectorHealthtech,
	SectorSaaS,
	SectorECommerce,
	SectorAIAndML,
	SectorEdtech,
	SectorCybersecurity,
	SectorBiotechnology,
	SectorInternetOfThings,
	SectorCleanEnergy,
	SectorProptech,
	SectorARAndVR,
	SectorFoodtech,
	SectorAutonomousVehicles,
	SectorRobotics,
	SectorAgtech,
	SectorInsurtech,
	SectorMedtech,
	SectorBlockchain,
	SectorDigitalHealth,
	SectorDesign,
	SectorMarTech,
	SectorHRTech,
	SectorTravelAndTourism,
	SectorEntertainmentAndMedia,
	SectorRetailAndConsumerGoods,
	SectorLegal,
	SectorSportsTech,
	SectorFashion,
	SectorAdTech,
	SectorGamingAndEsports,
	SectorManufacturing,
	SectorBankingAndFinancialServices,
	SectorConstructionAndEngineering,
	SectorRealEstate,
	SectorEventPlanning,
	SectorConsultingServices,
	SectorContentCreation,
	SectorOther,
)

// Sectors returns the sector vocabulary. Fallback: Other.
func Sectors() *Vocabulary[Sector] { return sectors() }

func (s *Sector) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*s = Sector(label)
	return err
}

// SectorList accepts either a single sector or a list of sectors and always
// serializes as a list.
type SectorList []Sector

func (l *SectorList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	var raw []json.RawMessage
	if len(data) == 0 || data[0] != '[' || json.Unmarshal(data, &raw) != nil {
		label, err := labelFromJSON(data)
		*l = SectorList{Sector(label)}
		return err
	}
	out := make(SectorList, len(raw))
	for i, item := range raw {
		label, err := labelFromJSON(item)
		if err != nil {
			return err
		}
		out[i] = Sector(label)
	}
	*l = out
	return nil
}
