package bank

import "errors"

// ErrNoQuestions is returned by Load when the file was readable but
// produced zero valid questions. Callers should keep any previously
// loaded bank instead of replacing it with an empty one.
var ErrNoQuestions = errors.New("no valid questions found in file")
