package recommend

// El motor trabaja sobre un snapshot de lectura que arma el servicio en cada
// request: nada de lo que se deriva aquí (corpus, matrices, mapeos) sobrevive
// a la llamada.

// Movie es la vista mínima de una película que necesita el motor.
type Movie struct {
	ID         int
	Title      string
	Overview   string
	Genres     []string
	Popularity float64
}

// Rating es un voto entero en [1,10]; 0 nunca es un rating válido,
// se reserva como centinela de "no calificado" en la matriz densa.
type Rating struct {
	UserID  int
	MovieID int
	Value   int
}

// Snapshot es la foto consistente del estado que consume una llamada.
// FavoriteIDs son los favoritos del usuario del request (si lo hay).
type Snapshot struct {
	Movies      []Movie
	UserIDs     []int
	Ratings     []Rating
	FavoriteIDs []int
}

// Mode selecciona la rama del orquestador cuando no hay película objetivo.
type Mode string

const (
	ModeCollaborative Mode = "collaborative"
	ModeContent       Mode = "content"
)

// Request es la forma etiquetada del pedido: la presencia/ausencia de
// UserID y MovieID decide la rama (0 = ausente).
type Request struct {
	UserID  int
	MovieID int
	Mode    Mode
	TopN    int
}

const (
	// DefaultTopN es el tamaño de lista si el caller no pide otro.
	DefaultTopN = 10

	// Umbrales mínimos para que el filtrado colaborativo tenga sentido
	// estadístico; por debajo se cae a contenido.
	minUsersForCF   = 5
	minMoviesForCF  = 5
	minRatingsForCF = 10

	// Vecinos considerados al predecir un rating.
	neighborCount = 10

	// Un rating >= likeThreshold cuenta como "le gustó" para las semillas
	// del filtrado por contenido.
	likeThreshold = 7
)
