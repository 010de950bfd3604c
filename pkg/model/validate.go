package model

import "github.com/go-playground/validator/v10"

// Single validator instance for the whole package; tag parsing is cached per type.
var validate = validator.New()
