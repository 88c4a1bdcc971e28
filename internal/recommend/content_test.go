package recommend

import (
	"math"
	"testing"
)

func testCorpus() []string {
	return []string{
		"heat drama crime story heist",
		"the score crime heist drama",
		"invasion alien invasion space battle",
		"galaxy alien space adventure",
	}
}

func TestNewContentModel(t *testing.T) {
	tests := []struct {
		name string
		docs []string
		nil_ bool
	}{
		{name: "corpus vacío", docs: nil, nil_: true},
		{name: "una sola película", docs: []string{"solo drama"}, nil_: true},
		{name: "dos películas alcanzan", docs: []string{"drama", "crime"}, nil_: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewContentModel(tt.docs)
			if (cm == nil) != tt.nil_ {
				t.Errorf("NewContentModel(%d docs) nil=%v, want nil=%v", len(tt.docs), cm == nil, tt.nil_)
			}
		})
	}
}

func TestContentModelSymmetry(t *testing.T) {
	cm := NewContentModel(testCorpus())
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}

	for i := 0; i < cm.n; i++ {
		for j := 0; j < cm.n; j++ {
			if math.Abs(cm.Similarity(i, j)-cm.Similarity(j, i)) > 1e-12 {
				t.Errorf("sim[%d][%d]=%f != sim[%d][%d]=%f", i, j, cm.Similarity(i, j), j, i, cm.Similarity(j, i))
			}
		}
	}
}

func TestContentModelSelfSimilarityMax(t *testing.T) {
	cm := NewContentModel(testCorpus())
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}

	for i := 0; i < cm.n; i++ {
		self := cm.Similarity(i, i)
		if math.Abs(self-1.0) > 1e-9 {
			t.Errorf("sim[%d][%d] = %f, want 1.0", i, i, self)
		}
		for j := 0; j < cm.n; j++ {
			if cm.Similarity(i, j) > self+1e-12 {
				t.Errorf("sim[%d][%d]=%f mayor que la auto-similitud %f", i, j, cm.Similarity(i, j), self)
			}
		}
	}
}

func TestContentModelIdenticalDocs(t *testing.T) {
	cm := NewContentModel([]string{
		"crime heist drama",
		"crime heist drama",
		"alien space battle",
	})
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}
	if got := cm.Similarity(0, 1); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("películas con texto idéntico: sim = %f, want 1.0", got)
	}
}

func TestSimilarMovies(t *testing.T) {
	cm := NewContentModel(testCorpus())
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}

	tests := []struct {
		name     string
		movieIdx int
		topN     int
		wantLen  int
		wantTop  int // índice esperado en primer lugar; -1 = no se valida
	}{
		{name: "similar a heat es the score", movieIdx: 0, topN: 2, wantLen: 2, wantTop: 1},
		{name: "similar a invasion es galaxy", movieIdx: 2, topN: 1, wantLen: 1, wantTop: 3},
		{name: "topN mayor al catálogo", movieIdx: 0, topN: 50, wantLen: 3, wantTop: 1},
		{name: "índice fuera de rango", movieIdx: 99, topN: 5, wantLen: 0, wantTop: -1},
		{name: "índice negativo", movieIdx: -1, topN: 5, wantLen: 0, wantTop: -1},
		{name: "topN cero", movieIdx: 0, topN: 0, wantLen: 0, wantTop: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.SimilarMovies(tt.movieIdx, tt.topN)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d (%v)", len(got), tt.wantLen, got)
			}
			if tt.wantTop >= 0 && got[0] != tt.wantTop {
				t.Errorf("primer resultado = %d, want %d", got[0], tt.wantTop)
			}
			for _, idx := range got {
				if idx == tt.movieIdx {
					t.Errorf("el resultado incluye a la propia película %d", tt.movieIdx)
				}
			}
		})
	}
}

func TestSimilarMoviesNeverIncludesSelf(t *testing.T) {
	cm := NewContentModel(testCorpus())
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}

	for i := 0; i < cm.n; i++ {
		for _, idx := range cm.SimilarMovies(i, cm.n) {
			if idx == i {
				t.Errorf("SimilarMovies(%d) devolvió la propia película", i)
			}
		}
	}
}

func TestAggregateSimilarity(t *testing.T) {
	cm := NewContentModel(testCorpus())
	if cm == nil {
		t.Fatal("NewContentModel devolvió nil")
	}

	single := cm.AggregateSimilarity([]int{0})
	for j := 0; j < cm.n; j++ {
		if math.Abs(single[j]-cm.Similarity(0, j)) > 1e-12 {
			t.Errorf("agregado de una semilla difiere de la fila: pos %d", j)
		}
	}

	// dos semillas = suma elemento a elemento de las dos filas
	both := cm.AggregateSimilarity([]int{0, 2})
	for j := 0; j < cm.n; j++ {
		want := cm.Similarity(0, j) + cm.Similarity(2, j)
		if math.Abs(both[j]-want) > 1e-12 {
			t.Errorf("agregado[%d] = %f, want %f", j, both[j], want)
		}
	}

	// índices desconocidos se saltan sin romper nada
	skipped := cm.AggregateSimilarity([]int{0, 99, -3})
	for j := 0; j < cm.n; j++ {
		if math.Abs(skipped[j]-single[j]) > 1e-12 {
			t.Errorf("semillas inválidas alteraron el resultado en pos %d", j)
		}
	}
}
