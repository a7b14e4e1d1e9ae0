// Package jobnova implements the job-nova API service, the backend
// gateway for the job board and AI avatar features.
//
// The service provides:
//   - A static job catalog with filtering and ranked recommendations
//   - Avatar generation sessions orchestrated over Tavus and LiveKit
//   - WebSocket fan-out of session status events to observers
//   - Persona conversation management via the Tavus conversations API
//   - LiveKit access token minting for room participants
package jobnova
