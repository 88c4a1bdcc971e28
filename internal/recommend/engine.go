package recommend

import "sort"

// Engine es el motor de recomendaciones de una sola llamada: se construye
// sobre un snapshot, deriva lo que necesita (corpus, matrices, mapeos) y se
// descarta. No comparte estado mutable entre requests, así que no necesita
// locks; requests concurrentes usan motores distintos.
type Engine struct {
	snap     Snapshot
	movieIdx map[int]int // movieId -> posición en snap.Movies

	contentBuilt bool
	contentModel *ContentModel
}

func NewEngine(snap Snapshot) *Engine {
	idx := make(map[int]int, len(snap.Movies))
	for i, m := range snap.Movies {
		idx[m.ID] = i
	}
	return &Engine{snap: snap, movieIdx: idx}
}

// content construye el modelo TF-IDF una sola vez por request.
// Devuelve nil si el corpus tiene menos de 2 películas.
func (e *Engine) content() *ContentModel {
	if !e.contentBuilt {
		e.contentModel = NewContentModel(BuildCorpus(e.snap.Movies))
		e.contentBuilt = true
	}
	return e.contentModel
}

func normTopN(topN int) int {
	if topN <= 0 {
		return DefaultTopN
	}
	return topN
}

// Recommend es el punto de entrada del orquestador. La rama se decide por
// la forma del request, en este orden fijo:
//
//  1. película objetivo        -> similares por contenido (ignora al usuario)
//  2. usuario, modo por defecto -> colaborativo (con fallback y padding)
//  3. usuario, modo contenido   -> semillas de favoritos + ratings altos
//  4. nada                      -> populares
func (e *Engine) Recommend(req Request) []int {
	topN := normTopN(req.TopN)

	switch {
	case req.MovieID != 0:
		return e.RecommendByContent(0, req.MovieID, topN)
	case req.UserID != 0 && req.Mode == ModeContent:
		return e.RecommendByContent(req.UserID, 0, topN)
	case req.UserID != 0:
		return e.RecommendByCollaboration(req.UserID, topN)
	default:
		return e.RecommendByContent(0, 0, topN)
	}
}

// RecommendByContent recomienda por similitud de contenido. Con movieID se
// buscan similares a esa película; con userID se agregan las filas de
// similitud de sus semillas (favoritos + ratings >= 7); sin nada, populares.
// Nunca falla: ids desconocidos y datos insuficientes terminan en lista
// vacía o en el fallback de popularidad.
func (e *Engine) RecommendByContent(userID, movieID, topN int) []int {
	topN = normTopN(topN)

	// con menos de 2 películas no hay corpus que vectorizar
	if len(e.snap.Movies) < 2 {
		return nil
	}

	if movieID != 0 {
		cm := e.content()
		idx, ok := e.movieIdx[movieID]
		if !ok {
			return nil
		}
		return e.idsAt(cm.SimilarMovies(idx, topN))
	}

	if userID != 0 {
		seeds := e.seedMovieIDs(userID)
		if len(seeds) == 0 {
			// cold start: sin señal de gustos, populares
			return e.popularIDs(topN)
		}

		cm := e.content()

		seedIdxs := make([]int, 0, len(seeds))
		for _, id := range seeds {
			if idx, ok := e.movieIdx[id]; ok {
				seedIdxs = append(seedIdxs, idx)
			}
		}
		scores := cm.AggregateSimilarity(seedIdxs)

		ranked := make([]int, len(scores))
		for i := range ranked {
			ranked[i] = i
		}
		sort.SliceStable(ranked, func(a, b int) bool {
			return scores[ranked[a]] > scores[ranked[b]]
		})

		// las semillas no se recomiendan a sí mismas
		seedSet := make(map[int]bool, len(seeds))
		for _, id := range seeds {
			seedSet[id] = true
		}

		var out []int
		for _, idx := range ranked {
			id := e.snap.Movies[idx].ID
			if seedSet[id] {
				continue
			}
			out = append(out, id)
			if len(out) == topN {
				break
			}
		}
		return out
	}

	return e.popularIDs(topN)
}

// RecommendByCollaboration predice ratings con vecinos de gustos parecidos.
// Si el snapshot no alcanza los umbrales mínimos, o el usuario no está en
// el mapeo, se delega al camino de contenido. Si las predicciones no llenan
// topN se completa con contenido, sin repetir películas.
func (e *Engine) RecommendByCollaboration(userID, topN int) []int {
	topN = normTopN(topN)

	if len(e.snap.UserIDs) < minUsersForCF ||
		len(e.snap.Movies) < minMoviesForCF ||
		len(e.snap.Ratings) < minRatingsForCF {
		return e.RecommendByContent(userID, 0, topN)
	}

	idxs, ok := e.collaborative(userID, topN)
	if !ok {
		return e.RecommendByContent(userID, 0, topN)
	}

	out := e.idsAt(idxs)

	if len(out) < topN {
		seen := make(map[int]bool, len(out))
		for _, id := range out {
			seen[id] = true
		}
		for _, id := range e.RecommendByContent(userID, 0, topN) {
			if len(out) >= topN {
				break
			}
			if !seen[id] {
				out = append(out, id)
				seen[id] = true
			}
		}
	}

	return out
}

// seedMovieIDs junta favoritos del usuario y películas que calificó con
// likeThreshold o más, en ese orden.
func (e *Engine) seedMovieIDs(userID int) []int {
	seeds := append([]int(nil), e.snap.FavoriteIDs...)
	for _, r := range e.snap.Ratings {
		if r.UserID == userID && r.Value >= likeThreshold {
			seeds = append(seeds, r.MovieID)
		}
	}
	return seeds
}

// popularIDs ordena el catálogo por popularidad descendente (estable) y
// trunca a topN.
func (e *Engine) popularIDs(topN int) []int {
	ranked := make([]int, len(e.snap.Movies))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return e.snap.Movies[ranked[a]].Popularity > e.snap.Movies[ranked[b]].Popularity
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return e.idsAt(ranked)
}

func (e *Engine) idsAt(idxs []int) []int {
	ids := make([]int, len(idxs))
	for i, idx := range idxs {
		ids[i] = e.snap.Movies[idx].ID
	}
	return ids
}
