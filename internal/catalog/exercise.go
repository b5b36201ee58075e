package catalog

import "errors"

var ErrExerciseNotFound = errors.New("exercise not found")

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Exercise struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Tags        []Tag   `json:"tags"`
}

// ExerciseInput identifies an exercise by name. Description is only used when
// the exercise gets created, tags are added to whatever the exercise already has.
type ExerciseInput struct {
	Name        string
	Description *string
	Tags        []string
}
