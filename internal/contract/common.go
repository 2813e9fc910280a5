package contract

import "github.com/corvidae/daywise/internal/app"

type ImportResult = app.ImportResult
