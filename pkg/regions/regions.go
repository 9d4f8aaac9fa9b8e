// Package regions holds the closed gazetteer of Turkish provinces used to
// validate subscriber interest regions and to normalize epicenter names
// coming from the upstream feed.
package regions

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidRegion is returned when a user-supplied region is not in the gazetteer.
var ErrInvalidRegion = errors.New("invalid region")

// provinces lists every valid region name, in both ASCII-folded and native
// Turkish spellings. The upstream feed reports native spellings; users may
// type either.
var provinces = map[string]struct{}{
	"adana": {}, "adiyaman": {}, "afyonkarahisar": {}, "agri": {}, "amasya": {},
	"ankara": {}, "antalya": {}, "artvin": {}, "aydin": {}, "balikesir": {},
	"bartin": {}, "batman": {}, "bayburt": {}, "bilecik": {}, "bingol": {},
	"bitlis": {}, "bolu": {}, "burdur": {}, "bursa": {}, "canakkale": {},
	"cankiri": {}, "corum": {}, "denizli": {}, "diyarbakir": {}, "edirne": {},
	"elazig": {}, "erzincan": {}, "erzurum": {}, "eskisehir": {}, "gaziantep": {},
	"giresun": {}, "gumushane": {}, "hakkari": {}, "hatay": {}, "isparta": {},
	"mersin": {}, "istanbul": {}, "izmir": {}, "kars": {}, "kastamonu": {},
	"kayseri": {}, "kirklareli": {}, "kirsehir": {}, "kilis": {}, "kocaeli": {},
	"konya": {}, "kutahya": {}, "malatya": {}, "manisa": {}, "kahramanmaras": {},
	"mardin": {}, "mugla": {}, "mus": {}, "nevsehir": {}, "nigde": {},
	"ordu": {}, "rize": {}, "sakarya": {}, "samsun": {}, "sanliurfa": {},
	"siirt": {}, "sinop": {}, "sivas": {}, "tekirdag": {}, "tokat": {},
	"trabzon": {}, "tunceli": {}, "usak": {}, "van": {}, "yozgat": {},
	"zonguldak": {}, "aksaray": {}, "karaman": {}, "kirikkale": {}, "sirnak": {},
	"ardahan": {}, "igdir": {}, "yalova": {}, "karabuk": {}, "osmaniye": {},
	"duzce": {},
	"adıyaman": {}, "ağrı": {}, "aydın": {}, "balıkesir": {}, "bartın": {},
	"bingöl": {}, "çanakkale": {}, "çankırı": {}, "çorum": {}, "diyarbakır": {},
	"elazığ": {}, "eskişehir": {}, "gümüşhane": {}, "hakkâri": {},
	"kırklareli": {}, "kırşehir": {}, "kütahya": {}, "kahramanmaraş": {},
	"muğla": {}, "muş": {}, "nevşehir": {}, "niğde": {}, "şanlıurfa": {},
	"tekirdağ": {}, "uşak": {}, "kırıkkale": {}, "şırnak": {}, "iğdır": {},
	"karabük": {}, "düzce": {},
}

// Normalize trims and lower-cases a region name so upstream epicenter names
// and user input compare equal. Turkish casing rules apply first (dotted
// capital İ lowers to plain i); when the folded form is not a known province
// a plain ASCII lowering is tried, so "Istanbul" and "IZMIR" resolve to the
// same canonical name as their native spellings instead of folding capital I
// to dotless ı and missing the gazetteer.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	folded := strings.ToLowerSpecial(unicode.TurkishCase, trimmed)
	if _, ok := provinces[folded]; ok {
		return folded
	}
	if plain := strings.ToLower(trimmed); plain != folded {
		if _, ok := provinces[plain]; ok {
			return plain
		}
	}
	return folded
}

// Valid reports whether the name, after normalization, is a known province.
func Valid(name string) bool {
	_, ok := provinces[Normalize(name)]
	return ok
}

// Validate normalizes the name and returns it, or ErrInvalidRegion if it is
// not in the gazetteer.
func Validate(name string) (string, error) {
	normalized := Normalize(name)
	if _, ok := provinces[normalized]; !ok {
		return "", ErrInvalidRegion
	}
	return normalized, nil
}
