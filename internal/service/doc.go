// Package service implements the business layer of the development chat
// backend.
//
// The backend keeps everything in memory: users, channels with their members
// and messages, and the realtime connections opened by clients. Services are
// exposed through interfaces so the HTTP layer can be tested against fakes.
package service
