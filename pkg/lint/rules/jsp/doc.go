// Package jsp provides rules for JSP directives and scripting elements.
package jsp
