/*
Package status formats what a fix did to a file.

	+-------------+      +-------------+
	|  FileResult | ---> |   Console   |
	|  (summary)  |      |  (one line) |
	+-------------+      +-------------+
	       |
	+------+------+
	| UnifiedDiff |
	|  (preview)  |
	+-------------+

🎯 Purpose:
- One coloured line per touched file (modified, unchanged, failed)
- The "Removing lines X to Y" announcement
- A unified diff of the splice for debug output

Nothing in here touches the file system.
*/
package status
