// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission validates and stores answer submissions.

# Stages

Parsing and persistence are separate. Parse is pure:

	sub, err := submission.Parse(body)

It rejects empty or malformed bodies, a missing or non-integer quiz_id,
an empty answers list, a missing question_id, and submitted_answer values
other than true, false, or null.

Transactor.Submit then writes one row per answer in input order:

	res, err := submission.NewTransactor(db).Submit(ctx, sub)

# Atomicity

All inserts run in one transaction. On any failure the transaction is
rolled back before Submit returns, so a submission is stored completely
or not at all.

# Errors

  - *ValidationError: client data failed a structural check (400)
  - *PersistenceError: database failure, carries the cause and the
    original payload (500)
*/
package submission
