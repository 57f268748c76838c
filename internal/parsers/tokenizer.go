package parsers

import (
	"strings"
	"unicode/utf8"
)

// Punctuation and digits are mapped to spaces before splitting. The set is
// fixed; anything outside it (including accented letters) survives intact.
const punctuationChars = ".,;:!?¿¡\"'´`()[]{}<>«»„“”‘’—–-_…·/\\|+*=~^%$#@&0123456789"

// Spanish closed-class function words. Tokens of length <= 2 are filtered
// before this set is consulted, so two-letter words are omitted.
var stopWords = map[string]struct{}{
	"que": {}, "los": {}, "las": {}, "una": {}, "uno": {}, "unos": {},
	"unas": {}, "del": {}, "por": {}, "para": {}, "con": {}, "sin": {},
	"como": {}, "pero": {}, "más": {}, "mas": {}, "muy": {}, "son": {},
	"está": {}, "están": {}, "este": {}, "esta": {}, "esto": {},
	"estos": {}, "estas": {}, "ese": {}, "esa": {}, "eso": {},
	"esos": {}, "esas": {}, "aquel": {}, "aquella": {}, "sus": {},
	"les": {}, "nos": {}, "hay": {}, "aquí": {}, "allí": {}, "ahí": {},
	"cuando": {}, "donde": {}, "porque": {}, "entre": {}, "sobre": {},
	"hasta": {}, "desde": {}, "también": {}, "tampoco": {}, "todo": {},
	"toda": {}, "todos": {}, "todas": {}, "otro": {}, "otra": {},
	"otros": {}, "otras": {}, "ser": {}, "estar": {}, "fue": {},
	"era": {}, "han": {}, "has": {}, "sido": {}, "algo": {},
	"nada": {}, "cada": {}, "ella": {}, "ellos": {}, "ellas": {},
	"usted": {}, "ustedes": {}, "nosotros": {}, "vosotros": {},
}

// Tokenize lower-cases the text, strips punctuation and splits it into
// candidate vocabulary tokens, dropping trivially short tokens and
// function words. Duplicates within one call are preserved; callers
// deduplicate across calls.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuationChars, r) {
			return ' '
		}
		return r
	}, lowered)

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
