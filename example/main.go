// Minimal example for rutego driving a TMDB-style movie-catalog API with
// typed routes, a YAML route manifest, lifecycle hooks and metrics. The
// route declarations are plain configuration data; the client itself knows
// nothing about movies.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/adiwarsito/rutego"
)

type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

type RatingRequest struct {
	Value float64 `json:"value"`
}

type RatingResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

var (
	popularMovies = rutego.Get[MovieList]("/movie/popular")
	movieDetail   = rutego.Get[Movie]("/movie/{movie_id}")
	rateMovie     = rutego.Post[RatingResponse]("/movie/{movie_id}/rating")
	deleteRating  = rutego.Delete[struct{}]("/movie/{movie_id}/rating")
)

const routeManifest = `
routes:
  /movie/popular:
    get:
      statuses: [200]
  /movie/{movie_id}:
    get:
      params: [movie_id]
      statuses: [200, 404]
  /movie/{movie_id}/rating:
    post:
      params: [movie_id]
      statuses: [201]
    delete:
      params: [movie_id]
      statuses: [204]
`

func main() {
	table, err := rutego.LoadRouteTable(strings.NewReader(routeManifest))
	if err != nil {
		log.Fatalf("load route manifest: %v", err)
	}

	client := rutego.New("https://api.themoviedb.org/3",
		rutego.WithHeader("Authorization", "Bearer "+os.Getenv("TMDB_TOKEN")),
		rutego.WithTimeout(15*time.Second),
		rutego.WithRouteTable(table),
		rutego.WithMetrics(),
		rutego.WithSimpleLogger(),
		rutego.WithOnRequest(func(ctx context.Context, req *http.Request) error {
			req.Header.Set("User-Agent", "rutego-example")
			return nil
		}),
		rutego.WithOnError(func(ctx context.Context, err error) error {
			log.Printf("call failed: %v", err)
			return nil
		}),
	)
	if !client.IsValid() {
		log.Fatalf("invalid client config: %v", client.ValidationError())
	}

	ctx := context.Background()

	popular, err := rutego.Do(ctx, client, popularMovies, &rutego.RequestOptions{
		Query: map[string]any{"page": 2, "language": "en-US"},
	})
	if err != nil {
		log.Fatalf("popular movies: %v", err)
	}
	if !popular.OK() {
		log.Fatalf("popular movies: %s", popular.Err())
	}
	for _, movie := range popular.Value().Results {
		fmt.Printf("%d  %s (%.1f)\n", movie.ID, movie.Title, movie.VoteAverage)
	}

	detail, err := rutego.Do(ctx, client, movieDetail, &rutego.RequestOptions{
		Params: map[string]any{"movie_id": 550},
	})
	if err != nil {
		log.Fatalf("movie detail: %v", err)
	}
	if detail.OK() {
		fmt.Println("detail:", detail.Value().Title)
	}

	rated, err := rutego.Do(ctx, client, rateMovie, &rutego.RequestOptions{
		Params: map[string]any{"movie_id": 550},
		Body:   RatingRequest{Value: 8.5},
	})
	if err != nil {
		log.Fatalf("rate movie: %v", err)
	}
	if rated.OK() {
		fmt.Println("rating:", rated.Value().StatusMessage)
	}

	removed, err := rutego.Do(ctx, client, deleteRating, &rutego.RequestOptions{
		Params: map[string]any{"movie_id": 550},
	})
	if err != nil {
		log.Fatalf("delete rating: %v", err)
	}
	fmt.Println("rating removed:", removed.OK())
}
