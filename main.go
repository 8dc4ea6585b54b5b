package main

import "tour-booking-api/config"

func main() {
	config.RunServer()
}
