// Package locomotion implements the player's input-driven movement model.
//
// Each tick the host calls the input mapper, which overwrites the player's
// commanded direction from the held keys, and then the velocity integrator,
// which adds direction*speed*dt to the player's rigid body velocity. The two
// stages always run in that order. Direction persists across ticks with no
// key held, so a released ball keeps accelerating along the last axis.
//
// Translate implements the older control scheme that moves the transform
// directly and stops as soon as keys are released.
package locomotion
