package api

import "github.com/gorilla/mux"

// Router wires the HTTP surface onto a gorilla mux.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/levels", s.Levels).Methods("GET")
	r.HandleFunc("/access-points", s.AccessPoints).Methods("GET")
	r.HandleFunc("/rooms", s.Rooms).Methods("GET")
	r.HandleFunc("/device-readings", s.ListReadings).Methods("GET")
	r.HandleFunc("/device-readings", s.AppendReading).Methods("POST")
	r.HandleFunc("/device-readings", s.UpsertReading).Methods("PUT")
	r.HandleFunc("/positions", s.Positions).Methods("GET")
	return r
}
