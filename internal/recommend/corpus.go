package recommend

import "strings"

// BuildCorpus arma un documento de texto por película: título + overview +
// géneros, todo en minúsculas. El orden de los documentos es el mismo orden
// del slice de películas, y ese orden es el que define los índices del
// mapeo movieId -> posición; si se reordena el snapshot hay que reconstruir
// todo (por eso el motor es efímero por request).
func BuildCorpus(movies []Movie) []string {
	docs := make([]string, len(movies))
	for i, m := range movies {
		parts := []string{m.Title, m.Overview, strings.Join(m.Genres, " ")}
		docs[i] = strings.ToLower(strings.Join(parts, " "))
	}
	return docs
}
