// internal/domain/geo/wilaya.go
package geo

import "errors"

// ErrWilayaNotFound is returned when a wilaya code has no match
var ErrWilayaNotFound = errors.New("wilaya not found")

// Wilaya is an administrative region code/name pair used as the
// shipping-destination field in order forms.
type Wilaya struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// wilayas is the full region list, loaded wholesale at startup and never
// mutated.
var wilayas = []Wilaya{
	{"01", "Adrar"}, {"02", "Chlef"}, {"03", "Laghouat"}, {"04", "Oum El Bouaghi"},
	{"05", "Batna"}, {"06", "Béjaïa"}, {"07", "Biskra"}, {"08", "Béchar"},
	{"09", "Blida"}, {"10", "Bouira"}, {"11", "Tamanrasset"}, {"12", "Tébessa"},
	{"13", "Tlemcen"}, {"14", "Tiaret"}, {"15", "Tizi Ouzou"}, {"16", "Alger"},
	{"17", "Djelfa"}, {"18", "Jijel"}, {"19", "Sétif"}, {"20", "Saïda"},
	{"21", "Skikda"}, {"22", "Sidi Bel Abbès"}, {"23", "Annaba"}, {"24", "Guelma"},
	{"25", "Constantine"}, {"26", "Médéa"}, {"27", "Mostaganem"}, {"28", "M'Sila"},
	{"29", "Mascara"}, {"30", "Ouargla"}, {"31", "Oran"}, {"32", "El Bayadh"},
	{"33", "Illizi"}, {"34", "Bordj Bou Arréridj"}, {"35", "Boumerdès"}, {"36", "El Tarf"},
	{"37", "Tindouf"}, {"38", "Tissemsilt"}, {"39", "El Oued"}, {"40", "Khenchela"},
	{"41", "Souk Ahras"}, {"42", "Tipaza"}, {"43", "Mila"}, {"44", "Aïn Defla"},
	{"45", "Naâma"}, {"46", "Aïn Témouchent"}, {"47", "Ghardaïa"}, {"48", "Relizane"},
	{"49", "Timimoun"}, {"50", "Bordj Badji Mokhtar"}, {"51", "Ouled Djellal"}, {"52", "Béni Abbès"},
	{"53", "In Salah"}, {"54", "In Guezzam"}, {"55", "Touggourt"}, {"56", "Djanet"},
	{"57", "El M'Ghair"}, {"58", "El Menia"},
}

// Wilayas returns the full region list
func Wilayas() []Wilaya {
	out := make([]Wilaya, len(wilayas))
	copy(out, wilayas)
	return out
}

// ByCode looks up a wilaya by its region code
func ByCode(code string) (Wilaya, error) {
	for _, w := range wilayas {
		if w.Code == code {
			return w, nil
		}
	}
	return Wilaya{}, ErrWilayaNotFound
}
