package http

import (
	pkgErrors "hr-recommendation/pkg/errors"
)

const codeInvalidBody = 10001

var errInvalidBody = pkgErrors.NewBadRequestError(codeInvalidBody, "invalid employee metrics body")
