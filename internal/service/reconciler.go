// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// reconcileStatus computes the minimal local mutations that align one
// boolean article status with a remote snapshot, without letting the
// snapshot clobber local changes that have not been acknowledged yet.
//
// The pending set removes in-flight articles from the remote snapshot
// first; a stale remote response therefore can never undo work that is
// still on its way to the backend:
//
//	effectiveRemote = remote − pending
//	toSet   = effectiveRemote − local   (remote says set, local disagrees)
//	toUnset = local − effectiveRemote   (local says set, remote no longer does)
//
// The function is pure and idempotent: identical inputs produce
// identical outputs, and applying the result makes a second run return
// two empty sets.
func reconcileStatus(remote, local, pending map[string]struct{}) (toSet, toUnset []string) {
	for id := range remote {
		if _, inFlight := pending[id]; inFlight {
			continue
		}
		if _, have := local[id]; !have {
			toSet = append(toSet, id)
		}
	}
	for id := range local {
		if _, inFlight := pending[id]; inFlight {
			continue
		}
		if _, still := remote[id]; !still {
			toUnset = append(toUnset, id)
		}
	}
	return toSet, toUnset
}
