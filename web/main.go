package main

import (
	"flag"
	"log"

	"github.com/df07/go-ray-intersect/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to run the web server on")
	flag.Parse()

	s := server.NewServer(*port)
	if err := s.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
