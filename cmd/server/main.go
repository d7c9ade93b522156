package main

import "doctorkays/internal/app"

// @title           Doctor Kays API
// @version         1.0
// @description     Backend for the Doctor Kays medical consultation platform.
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	app.Run()
}
