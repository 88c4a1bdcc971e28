package recommend

import (
	"math"
	"sort"
)

// Filtrado colaborativo user-based: matriz densa usuario×película,
// centrado por la media de cada usuario, coseno usuario-usuario y
// predicción por voto ponderado de los vecinos. Todo se recalcula
// en cada llamada sobre el snapshot.

type prediction struct {
	movieIdx int
	value    float64
}

// collaborative devuelve los índices de película predichos para userID,
// ordenados por rating predicho descendente. ok=false cuando el usuario no
// está en el mapeo (el orquestador cae a contenido en ese caso).
func (e *Engine) collaborative(userID, topN int) (idxs []int, ok bool) {
	nUsers := len(e.snap.UserIDs)
	nMovies := len(e.snap.Movies)

	userIdx := make(map[int]int, nUsers)
	for i, id := range e.snap.UserIDs {
		userIdx[id] = i
	}

	cu, found := userIdx[userID]
	if !found {
		return nil, false
	}

	// 1) matriz densa de ratings; 0 = sin calificar
	matrix := make([][]float64, nUsers)
	for i := range matrix {
		matrix[i] = make([]float64, nMovies)
	}
	for _, r := range e.snap.Ratings {
		ui, uok := userIdx[r.UserID]
		mi, mok := e.movieIdx[r.MovieID]
		if !uok || !mok {
			continue
		}
		matrix[ui][mi] = float64(r.Value)
	}

	// 2) media de cada usuario solo sobre sus celdas no-cero
	means := make([]float64, nUsers)
	for i, row := range matrix {
		var sum float64
		var count int
		for _, v := range row {
			if v != 0 {
				sum += v
				count++
			}
		}
		if count > 0 {
			means[i] = sum / float64(count)
		}
	}

	// 3) matriz centrada: solo se desplazan las celdas no-cero,
	// el 0 sigue significando "sin calificar"
	centered := make([][]float64, nUsers)
	for i, row := range matrix {
		centered[i] = make([]float64, nMovies)
		for j, v := range row {
			if v != 0 {
				centered[i][j] = v - means[i]
			}
		}
	}

	// 4) similitud coseno del usuario actual contra el resto
	sims := make([]float64, nUsers)
	for i := range centered {
		sims[i] = cosine(centered[cu], centered[i])
	}

	// 5) top vecinos por similitud descendente, excluyendo al propio usuario
	others := make([]int, 0, nUsers-1)
	for i := 0; i < nUsers; i++ {
		if i != cu {
			others = append(others, i)
		}
	}
	sort.SliceStable(others, func(a, b int) bool {
		return sims[others[a]] > sims[others[b]]
	})
	if len(others) > neighborCount {
		others = others[:neighborCount]
	}

	// 6) predicción ponderada para cada película sin calificar
	var preds []prediction
	for j := 0; j < nMovies; j++ {
		if matrix[cu][j] != 0 {
			continue
		}

		var num, weight float64
		for _, nb := range others {
			if matrix[nb][j] > 0 {
				w := sims[nb]
				num += w * centered[nb][j]
				weight += w
			}
		}

		// peso total <= 0: sin señal, la película se descarta
		if weight <= 0 {
			continue
		}

		preds = append(preds, prediction{
			movieIdx: j,
			value:    num/weight + means[cu],
		})
	}

	sort.SliceStable(preds, func(a, b int) bool {
		return preds[a].value > preds[b].value
	})
	if len(preds) > topN {
		preds = preds[:topN]
	}

	idxs = make([]int, len(preds))
	for i, p := range preds {
		idxs[i] = p.movieIdx
	}
	return idxs, true
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
