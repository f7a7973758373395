/*
Package splice removes the duplicated portfolio loop from a page by line surgery.

	+----------+     +----------+     +----------+     +----------+
	|   Load   | --> |  Locate  | --> |  Splice  | --> | Persist  |
	| (split)  |     |  (scan)  |     | (replace)|     |  (join)  |
	+----------+     +----------+     +----------+     +----------+

🔍 Scan phases:

	Searching --start marker--> FoundStart --forEach opener--> InLoop --depth 0 && "});"--> Done

A line counts as the start when it holds both "// Portfolio with accordion" and
"const listDiv". The loop opener must match "active.forEach(h => {" after
trimming. Inside the loop every "{" and "}" on a line moves the depth, and the
first line that brings it to zero while containing "});" ends the region.

⚠️ Limits:
  - braces are counted literally, so a brace inside a string or comment throws the count off
  - only one region is removed per run
  - a second start marker before the loop closes replaces the first one

After a successful run the start marker line is gone, so running again finds
nothing and leaves the file alone.
*/
package splice
