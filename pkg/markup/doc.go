// Package markup builds a lightweight node tree from HTML and JSP sources.
//
// The tree is a structural view for lint checks, not a conforming HTML
// parse: no implied elements are inserted and misnested end tags are
// resolved against the nearest matching open element. JSP segments
// (<%@ %>, <%= %>, <% %>, <%-- --%>) are recognised inside text and become
// their own nodes.
package markup
