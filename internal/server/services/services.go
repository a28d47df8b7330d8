// Package services implements the use cases of gophtasks: account
// registration and login, and the owner-checked task operations.
package services

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/gophtasks/internal/server/services")
