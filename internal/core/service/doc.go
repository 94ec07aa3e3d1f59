// Package service provides domain services for stagepass.
//
// Domain services contain the request-to-credential translation logic
// and define the port to the external signing collaborator. They hold
// no state between requests.
package service
