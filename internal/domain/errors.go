package domain

import "errors"

// ErrNotFound is returned when an entity does not exist, or exists but is not
// owned by the supplied account. Scoped mutations deliberately collapse the two
// cases so callers cannot probe for rows belonging to other accounts.
var ErrNotFound = errors.New("not found")
