package recommend

import (
	"math"
	"strings"
	"unicode"
)

// tokenize parte un documento en términos: secuencias de letras/dígitos de
// al menos 2 caracteres, en minúsculas, sin stopwords. Es el mismo criterio
// de los vectorizadores de texto clásicos.
func tokenize(doc string) []string {
	doc = strings.ToLower(doc)

	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() >= 2 {
			w := b.String()
			if !englishStopWords[w] {
				tokens = append(tokens, w)
			}
		}
		b.Reset()
	}

	for _, r := range doc {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// tfidfVectors ajusta TF-IDF sobre el corpus y devuelve un vector sparse
// (término -> peso) por documento, normalizado L2. Con filas normalizadas,
// la similitud coseno entre dos documentos es el producto punto directo.
//
// IDF suavizado: ln((1+n)/(1+df)) + 1, con n = docs y df = docs que
// contienen el término.
func tfidfVectors(docs []string) []map[string]float64 {
	n := len(docs)

	tokenized := make([][]string, n)
	df := make(map[string]int)
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)

		seen := make(map[string]bool)
		for _, t := range tokenized[i] {
			if !seen[t] {
				df[t]++
				seen[t] = true
			}
		}
	}

	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	vecs := make([]map[string]float64, n)
	for i, tokens := range tokenized {
		vec := make(map[string]float64)
		for _, t := range tokens {
			vec[t] += idf[t] // conteo crudo * idf
		}
		normalizeL2(vec)
		vecs[i] = vec
	}
	return vecs
}

func normalizeL2(vec map[string]float64) {
	var sq float64
	for _, v := range vec {
		sq += v * v
	}
	if sq == 0 {
		return
	}
	norm := math.Sqrt(sq)
	for t := range vec {
		vec[t] /= norm
	}
}

// dotSparse recorre el vector más chico para el producto punto.
func dotSparse(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, va := range a {
		if vb, ok := b[t]; ok {
			dot += va * vb
		}
	}
	return dot
}
