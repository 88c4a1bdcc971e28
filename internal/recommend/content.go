package recommend

import "sort"

// ContentModel guarda la matriz película×película de similitud coseno sobre
// vectores TF-IDF del corpus. Es simétrica por construcción y la diagonal
// vale 1.0 cuando el documento no quedó vacío tras tokenizar.
type ContentModel struct {
	n   int
	sim [][]float64
}

// NewContentModel vectoriza el corpus y precalcula la matriz completa.
// Con menos de 2 documentos no hay similitud que calcular: devuelve nil y
// el caller responde "sin recomendaciones" en vez de error.
func NewContentModel(docs []string) *ContentModel {
	if len(docs) < 2 {
		return nil
	}

	vecs := tfidfVectors(docs)
	n := len(vecs)

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := dotSparse(vecs[i], vecs[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}

	return &ContentModel{n: n, sim: sim}
}

// Similarity expone una celda de la matriz (para tests y explicaciones).
func (c *ContentModel) Similarity(i, j int) float64 {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0
	}
	return c.sim[i][j]
}

// SimilarMovies devuelve hasta topN índices ordenados por similitud
// descendente con movieIdx, excluyéndolo a él mismo. Empates se resuelven
// por orden original del catálogo (sort estable). Índice fuera de rango
// devuelve vacío.
func (c *ContentModel) SimilarMovies(movieIdx, topN int) []int {
	if movieIdx < 0 || movieIdx >= c.n || topN <= 0 {
		return nil
	}

	row := c.sim[movieIdx]
	cands := make([]int, 0, c.n-1)
	for j := 0; j < c.n; j++ {
		if j != movieIdx {
			cands = append(cands, j)
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return row[cands[a]] > row[cands[b]]
	})

	if len(cands) > topN {
		cands = cands[:topN]
	}
	return cands
}

// AggregateSimilarity suma elemento a elemento las filas de similitud de
// cada semilla: un solo vector de score combinado sobre todo el catálogo.
// Índices fuera de rango se saltan en silencio.
func (c *ContentModel) AggregateSimilarity(seedIdxs []int) []float64 {
	scores := make([]float64, c.n)
	for _, idx := range seedIdxs {
		if idx < 0 || idx >= c.n {
			continue
		}
		for j, s := range c.sim[idx] {
			scores[j] += s
		}
	}
	return scores
}
