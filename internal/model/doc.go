package model

// Package model defines the countdown state used across the app: the fixed
// total, the remaining seconds and the running flag, plus the derived timer
// state and progress fraction. Transitions are explicit methods that report
// whether anything changed.
