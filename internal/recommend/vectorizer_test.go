package recommend

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "separa por no alfanuméricos y pasa a minúsculas",
			doc:  "The Matrix: Reloaded!",
			want: []string{"matrix", "reloaded"},
		},
		{
			name: "descarta stopwords",
			doc:  "a story about the heist",
			want: []string{"story", "heist"},
		},
		{
			name: "descarta tokens de un solo caracter",
			doc:  "x y z alien",
			want: []string{"alien"},
		},
		{
			name: "conserva números",
			doc:  "2001 space odyssey",
			want: []string{"2001", "space", "odyssey"},
		},
		{
			name: "documento vacío",
			doc:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.doc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestTfidfVectorsNormalized(t *testing.T) {
	docs := []string{
		"drama crime story heist",
		"crime heist drama",
		"alien invasion space battle",
	}

	vecs := tfidfVectors(docs)
	if len(vecs) != len(docs) {
		t.Fatalf("len(vecs) = %d, want %d", len(vecs), len(docs))
	}

	// cada fila no vacía queda con norma L2 = 1
	for i, vec := range vecs {
		if len(vec) == 0 {
			t.Fatalf("vec %d quedó vacío", i)
		}
		var sq float64
		for _, v := range vec {
			sq += v * v
		}
		if math.Abs(math.Sqrt(sq)-1.0) > 1e-9 {
			t.Errorf("norma del doc %d = %f, want 1.0", i, math.Sqrt(sq))
		}
	}
}

func TestTfidfIdenticalDocs(t *testing.T) {
	docs := []string{
		"crime heist drama",
		"crime heist drama",
	}

	vecs := tfidfVectors(docs)
	if got := dotSparse(vecs[0], vecs[1]); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("similitud de documentos idénticos = %f, want 1.0", got)
	}
}

func TestTfidfAllStopwords(t *testing.T) {
	vecs := tfidfVectors([]string{"the of and", "crime heist"})
	if len(vecs[0]) != 0 {
		t.Errorf("doc de solo stopwords debería dar vector vacío, got %v", vecs[0])
	}
	if got := dotSparse(vecs[0], vecs[1]); got != 0 {
		t.Errorf("dot con vector vacío = %f, want 0", got)
	}
}
