// Package loader reads MDP description files written in HCL and turns them
// into mdp.Model values.
//
// A file holds exactly one model block:
//
//	model "corridor" {
//	  actions     = ["left", "right"]
//	  initial     = "start"
//	  max_steps   = 20
//
//	  state "start" {
//	    observation = [0]
//	    action "right" {
//	      outcome "end" {
//	        weight = 1 - var.slip
//	        reward = 1
//	      }
//	      outcome "start" { weight = var.slip }
//	    }
//	  }
//	  state "end" { sink = true }
//	}
//
// Outcome weights default to 1 and rewards to 0. Expressions may reference
// var.<name>, supplied through WithVariables. States listed in a forbid
// attribute have those actions masked out regardless of their outcomes.
package loader
