// Package board provides the in-memory registries of Jobs and Users and the
// bookkeeping of the skills registered on them.
//
// A Job or User is created from a spec that is validated first. Only specs
// that pass validation are registered and assigned an ID. IDs are sequential
// integers starting at 1, one sequence per registry, and are never reused.
//
// A Manager owns both registries. Viewing a Job as a User credits the Job
// with one view per skill the User has registered.
package board
