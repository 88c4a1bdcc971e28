package recommend

import (
	"reflect"
	"testing"
)

func popularityOf(snap Snapshot, id int) float64 {
	for _, m := range snap.Movies {
		if m.ID == id {
			return m.Popularity
		}
	}
	return -1
}

func TestRecommendSimilarToMovie(t *testing.T) {
	// catálogo del escenario heist: B comparte vocabulario con A, C no
	snap := Snapshot{
		Movies: []Movie{
			{ID: 1, Title: "A", Overview: "Drama crime story about a heist", Genres: []string{"Crime", "Drama"}},
			{ID: 2, Title: "B", Overview: "Crime heist drama", Genres: []string{"Crime"}},
			{ID: 3, Title: "C", Overview: "Alien invasion space battle", Genres: []string{"Sci-Fi"}},
		},
	}
	e := NewEngine(snap)

	got := e.Recommend(Request{MovieID: 1, TopN: 2})
	want := []int{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recommend(movieId=1) = %v, want %v", got, want)
	}
}

func TestRecommendUnknownMovie(t *testing.T) {
	e := NewEngine(cfSnapshot())
	if got := e.Recommend(Request{MovieID: 999, TopN: 5}); len(got) != 0 {
		t.Errorf("película desconocida devolvió %v, want vacío", got)
	}
}

func TestRecommendPopularityOrder(t *testing.T) {
	snap := cfSnapshot()
	e := NewEngine(snap)

	tests := []struct {
		name string
		topN int
	}{
		{name: "topN menor al catálogo", topN: 3},
		{name: "topN igual al catálogo", topN: 6},
		{name: "topN mayor al catálogo", topN: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Recommend(Request{TopN: tt.topN})
			if len(got) > tt.topN {
				t.Fatalf("len = %d, want <= %d", len(got), tt.topN)
			}
			for i := 1; i < len(got); i++ {
				prev := popularityOf(snap, got[i-1])
				cur := popularityOf(snap, got[i])
				if cur > prev {
					t.Errorf("popularidad creciente en pos %d: %f > %f", i, cur, prev)
				}
			}
		})
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	e := NewEngine(Snapshot{})
	if got := e.Recommend(Request{TopN: 5}); len(got) != 0 {
		t.Errorf("catálogo vacío devolvió %v", got)
	}
}

func TestRecommendSingleMovieCatalog(t *testing.T) {
	e := NewEngine(Snapshot{Movies: []Movie{{ID: 1, Title: "única"}}})
	if got := e.Recommend(Request{TopN: 5}); len(got) != 0 {
		t.Errorf("catálogo de una película devolvió %v, want vacío", got)
	}
}

func TestContentColdStartEqualsPopular(t *testing.T) {
	snap := cfSnapshot()
	// usuario 4 no tiene favoritos y su único rating alto es... m5=9: sí es
	// semilla. Usamos al usuario 6 que no tiene nada.
	e := NewEngine(snap)

	got := e.Recommend(Request{UserID: 6, Mode: ModeContent, TopN: 4})
	want := e.popularIDs(4)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cold start = %v, want populares %v", got, want)
	}
}

func TestContentSeedsExcluded(t *testing.T) {
	snap := cfSnapshot()
	snap.FavoriteIDs = []int{3} // favorito del usuario 1
	e := NewEngine(snap)

	got := e.Recommend(Request{UserID: 1, Mode: ModeContent, TopN: 6})
	for _, id := range got {
		// semillas: favorito m3 y m1 calificada con 9
		if id == 3 || id == 1 {
			t.Errorf("la semilla %d apareció en el resultado %v", id, got)
		}
	}
	if len(got) == 0 {
		t.Error("resultado vacío, se esperaban recomendaciones por contenido")
	}
}

func TestCollaborationGateFallsBackToContent(t *testing.T) {
	// 4 usuarios: por debajo del umbral de 5, mismo resultado que contenido
	snap := cfSnapshot()
	snap.UserIDs = snap.UserIDs[:4]
	e := NewEngine(snap)

	byCollab := e.RecommendByCollaboration(1, 5)
	byContent := e.RecommendByContent(1, 0, 5)
	if !reflect.DeepEqual(byCollab, byContent) {
		t.Errorf("fallback por umbral: colaborativo %v != contenido %v", byCollab, byContent)
	}
}

func TestCollaborationScenario(t *testing.T) {
	// 6 usuarios, 6 películas, 12 ratings: <= 5 resultados y ninguna
	// película ya calificada por el usuario 1 (las predicciones cubren
	// m3..m6 y no hace falta padding que toque m2)
	e := NewEngine(cfSnapshot())

	got := e.RecommendByCollaboration(1, 4)
	if len(got) > 4 {
		t.Fatalf("len = %d, want <= 4", len(got))
	}
	rated := map[int]bool{1: true, 2: true}
	for _, id := range got {
		if rated[id] {
			t.Errorf("se recomendó %d que el usuario ya calificó", id)
		}
	}
}

func TestCollaborationPaddingUnique(t *testing.T) {
	// el usuario 6 no tiene ratings: el colaborativo no produce nada y el
	// padding de contenido llena, sin duplicados
	e := NewEngine(cfSnapshot())

	got := e.RecommendByCollaboration(6, 5)
	seen := make(map[int]bool)
	for _, id := range got {
		if seen[id] {
			t.Errorf("id duplicado %d en %v", id, got)
		}
		seen[id] = true
	}
	if len(got) == 0 {
		t.Error("el padding debió completar con recomendaciones por contenido")
	}
}

func TestCollaborationUnknownUserFallsBack(t *testing.T) {
	e := NewEngine(cfSnapshot())

	byCollab := e.RecommendByCollaboration(999, 5)
	byContent := e.RecommendByContent(999, 0, 5)
	if !reflect.DeepEqual(byCollab, byContent) {
		t.Errorf("usuario desconocido: colaborativo %v != contenido %v", byCollab, byContent)
	}
}

func TestRecommendDefaultTopN(t *testing.T) {
	e := NewEngine(cfSnapshot())

	got := e.Recommend(Request{})
	if len(got) != 6 { // catálogo entero (6) < DefaultTopN (10)
		t.Errorf("len = %d, want 6", len(got))
	}
}

func TestResultsAreUniqueAcrossBranches(t *testing.T) {
	snap := cfSnapshot()
	snap.FavoriteIDs = []int{2}
	e := NewEngine(snap)

	reqs := []Request{
		{MovieID: 1, TopN: 5},
		{UserID: 1, TopN: 5},
		{UserID: 1, Mode: ModeContent, TopN: 5},
		{TopN: 5},
	}
	for _, req := range reqs {
		got := e.Recommend(req)
		seen := make(map[int]bool)
		for _, id := range got {
			if seen[id] {
				t.Errorf("request %+v devolvió id duplicado %d: %v", req, id, got)
			}
			seen[id] = true
		}
	}
}
