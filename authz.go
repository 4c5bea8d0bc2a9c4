package main

// Authorization predicates. Every mutation checks one of these before
// touching a collection; a failed check leaves all state unchanged.

// canMutateEvent allows only the creator to change or delete an event.
func canMutateEvent(actor *Session, ev *Event) bool {
	return actor != nil && actor.ID == ev.CreatedBy
}

// canMutateTask delegates to event ownership: only the event owner may add,
// edit or delete tasks. Status toggling is deliberately NOT gated here — any
// authenticated user may flip a task's status (see UpdateTaskStatus).
func canMutateTask(actor *Session, ev *Event) bool {
	return canMutateEvent(actor, ev)
}

// canMutateSponsorship allows only the creator to edit or delete a request.
func canMutateSponsorship(actor *Session, req *SponsorshipRequest) bool {
	return actor != nil && actor.ID == req.CreatorID
}

// canFinalizeSponsorship allows the assigned admin to print/finalize a
// request, regardless of who created it.
func canFinalizeSponsorship(actor *Session, req *SponsorshipRequest) bool {
	return actor != nil && actor.Role == RoleAdmin && actor.ID == req.AssignedToEmployeeID
}

// canManageEmployees restricts the team-management view to admins.
func canManageEmployees(actor *Session) bool {
	return actor != nil && actor.Role == RoleAdmin
}
