// Package service provides application-level command and query handlers
// for users, task lists and task items.
//
// Error handling principles:
//  1. Expected failures surface as *domain.Error values so callers can
//     branch on Kind and Code.
//  2. Store sentinels are translated to their domain counterparts at this
//     layer; HTTP handlers never see store errors.
//  3. Anything else is an unexpected internal error and is passed through
//     wrapped, for the API layer to map to a generic 500.
package service
