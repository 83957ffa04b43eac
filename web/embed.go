package web

import "embed"

// TemplatesFS contém a página do dashboard
//
//go:embed templates/index.html
var TemplatesFS embed.FS

// StaticFS contém os assets do dashboard (js/css)
//
//go:embed static/*
var StaticFS embed.FS
