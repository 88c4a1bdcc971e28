package recommend

import (
	"reflect"
	"testing"
)

// cfSnapshot: 6 usuarios, 6 películas, 12 ratings. El usuario 1 calificó
// m1=9 (semilla) y m2=5; el resto cubre m3..m6 con correlación positiva
// hacia el usuario 1. El usuario 6 no tiene ratings.
func cfSnapshot() Snapshot {
	movies := []Movie{
		{ID: 1, Title: "Heat", Overview: "drama crime story heist", Genres: []string{"Crime", "Drama"}, Popularity: 60},
		{ID: 2, Title: "The Score", Overview: "crime heist drama", Genres: []string{"Crime"}, Popularity: 50},
		{ID: 3, Title: "Invasion", Overview: "alien invasion space battle", Genres: []string{"Sci-Fi"}, Popularity: 40},
		{ID: 4, Title: "Galaxy", Overview: "alien space adventure", Genres: []string{"Sci-Fi"}, Popularity: 30},
		{ID: 5, Title: "Laughs", Overview: "romantic comedy wedding", Genres: []string{"Comedy"}, Popularity: 20},
		{ID: 6, Title: "Tears", Overview: "family drama loss grief", Genres: []string{"Drama"}, Popularity: 10},
	}

	ratings := []Rating{
		{UserID: 1, MovieID: 1, Value: 9},
		{UserID: 1, MovieID: 2, Value: 5},

		{UserID: 2, MovieID: 1, Value: 9},
		{UserID: 2, MovieID: 2, Value: 4},
		{UserID: 2, MovieID: 3, Value: 9},

		{UserID: 3, MovieID: 1, Value: 8},
		{UserID: 3, MovieID: 2, Value: 3},
		{UserID: 3, MovieID: 4, Value: 9},

		{UserID: 4, MovieID: 2, Value: 3},
		{UserID: 4, MovieID: 5, Value: 9},

		{UserID: 5, MovieID: 1, Value: 9},
		{UserID: 5, MovieID: 6, Value: 8},
	}

	return Snapshot{
		Movies:  movies,
		UserIDs: []int{1, 2, 3, 4, 5, 6},
		Ratings: ratings,
	}
}

func TestCollaborativePredictions(t *testing.T) {
	e := NewEngine(cfSnapshot())

	idxs, ok := e.collaborative(1, 3)
	if !ok {
		t.Fatal("collaborative() ok = false, el usuario 1 está en el mapeo")
	}

	// predicciones des-centradas: m5 (3+7=10), m4 (7/3+7), m3 (5/3+7), m6 (6.5)
	got := e.idsAt(idxs)
	want := []int{5, 4, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("predicciones top-3 = %v, want %v", got, want)
	}
}

func TestCollaborativeSkipsRatedMovies(t *testing.T) {
	e := NewEngine(cfSnapshot())

	idxs, ok := e.collaborative(1, 10)
	if !ok {
		t.Fatal("collaborative() ok = false")
	}
	for _, id := range e.idsAt(idxs) {
		if id == 1 || id == 2 {
			t.Errorf("se predijo la película %d que el usuario ya calificó", id)
		}
	}
}

func TestCollaborativeUnknownUser(t *testing.T) {
	e := NewEngine(cfSnapshot())

	if _, ok := e.collaborative(999, 5); ok {
		t.Error("collaborative() ok = true para un usuario fuera del snapshot")
	}
}

func TestCollaborativeUserWithoutRatings(t *testing.T) {
	e := NewEngine(cfSnapshot())

	// media 0 por división segura; vector centrado nulo => sin señal,
	// sin predicciones, pero tampoco pánico ni NaN
	idxs, ok := e.collaborative(6, 5)
	if !ok {
		t.Fatal("collaborative() ok = false, el usuario 6 existe")
	}
	if len(idxs) != 0 {
		t.Errorf("usuario sin ratings produjo %d predicciones, want 0", len(idxs))
	}
}

func TestCollaborativeDegenerateWeight(t *testing.T) {
	// el único vecino que cubre m3 está correlacionado negativamente con
	// el usuario 1: peso total <= 0 y la película se descarta en silencio
	snap := Snapshot{
		Movies: []Movie{
			{ID: 1, Title: "a uno"}, {ID: 2, Title: "b dos"}, {ID: 3, Title: "c tres"},
			{ID: 4, Title: "d cuatro"}, {ID: 5, Title: "e cinco"},
		},
		UserIDs: []int{1, 2, 3, 4, 5},
		Ratings: []Rating{
			{UserID: 1, MovieID: 1, Value: 9},
			{UserID: 1, MovieID: 2, Value: 2},
			// usuario 2: opuesto al 1, y es el único que calificó m3
			{UserID: 2, MovieID: 1, Value: 2},
			{UserID: 2, MovieID: 2, Value: 9},
			{UserID: 2, MovieID: 3, Value: 8},
			// relleno para pasar el umbral de 10 ratings
			{UserID: 3, MovieID: 4, Value: 5},
			{UserID: 3, MovieID: 5, Value: 6},
			{UserID: 4, MovieID: 4, Value: 7},
			{UserID: 4, MovieID: 5, Value: 4},
			{UserID: 5, MovieID: 4, Value: 6},
		},
	}

	e := NewEngine(snap)
	idxs, ok := e.collaborative(1, 10)
	if !ok {
		t.Fatal("collaborative() ok = false")
	}
	for _, id := range e.idsAt(idxs) {
		if id == 3 {
			t.Error("m3 se predijo con peso total negativo; debería descartarse")
		}
	}
}
