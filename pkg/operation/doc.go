/*
Package operation runs the portfolio fix against a file on disk.

	+-------------+
	|   Runner    |
	+------+------+
	       |
	+------+------+
	| FixOperation|
	+------+------+
	       |
	 Load -> Locate -> Splice -> Persist

🔄 Flow:
1. Load the file as lines
2. Locate the duplicated loop
3. Announce the 1-based range, splice in the replacement and write it back
4. Report the result through the user logger

⚠️ A file without the duplicated loop is left alone. That case prints a failure
line but Execute still returns nil, so the process exits 0. Only I/O failures are
errors.

🔍 Example:

	op := operation.NewFixOperation(operation.Options{Path: "index.html", Logger: userLogger})
	err := operation.NewRunner(&zlog).Run(ctx, op)
*/
package operation
