package ui

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"formatDatePtr": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return "Draft"
		}
		return t.Format("January 2, 2006")
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
	"add": func(a, b int) int {
		return a + b
	},
	"hasPrefix": strings.HasPrefix,
	"paragraphs": func(s string) []string {
		var out []string
		for _, p := range strings.Split(s, "\n\n") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	},
}

// renderTemplate renders a named page inside the shared layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content, keyed by page name.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <link rel="stylesheet" href="/static/css/site.css">
</head>
<body class="bg-gray-50 min-h-screen flex flex-col">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16 items-center">
                <a href="/" class="text-lg font-semibold text-gray-900">{{.Site.Title}}</a>
                <div class="flex items-center space-x-6 text-sm">
                    <a href="/projects" class="text-gray-600 hover:text-gray-900">Projects</a>
                    <a href="/blog" class="text-gray-600 hover:text-gray-900">Blog</a>
                    <a href="/contact" class="text-gray-600 hover:text-gray-900">Contact</a>
                    {{if .Session}}
                    <a href="/admin" class="text-indigo-600 hover:text-indigo-800 font-medium">Admin</a>
                    <form method="post" action="/logout" class="inline">
                        <button type="submit" class="text-gray-500 hover:text-gray-700">Sign out</button>
                    </form>
                    {{end}}
                </div>
            </div>
        </div>
    </nav>

    {{if .Session}}
    {{if hasPrefix .Path "/admin"}}
    <div class="bg-gray-800">
        <div class="max-w-5xl mx-auto px-4 sm:px-6 lg:px-8 flex space-x-6 h-10 items-center text-sm">
            <a href="/admin" class="text-gray-300 hover:text-white">Dashboard</a>
            <a href="/admin/profile" class="text-gray-300 hover:text-white">Profile</a>
            <a href="/admin/projects" class="text-gray-300 hover:text-white">Projects</a>
            <a href="/admin/clients" class="text-gray-300 hover:text-white">Clients</a>
            <a href="/admin/posts" class="text-gray-300 hover:text-white">Posts</a>
            <a href="/admin/messages" class="text-gray-300 hover:text-white">Messages</a>
        </div>
    </div>
    {{end}}
    {{end}}

    <main class="flex-grow max-w-5xl w-full mx-auto px-4 sm:px-6 lg:px-8 py-10">
        {{template "content" .}}
    </main>

    <footer class="bg-white border-t py-6 text-center text-sm text-gray-500">
        {{.Site.Title}}{{if .Site.Tagline}} &middot; {{.Site.Tagline}}{{end}}
    </footer>
</body>
</html>`,

	"error": `<div class="text-center py-20">
    <h1 class="text-3xl font-bold text-gray-900 mb-4">{{.Title}}</h1>
    <p class="text-gray-600">{{.Message}}</p>
    <a href="/" class="mt-6 inline-block text-indigo-600 hover:text-indigo-800">Back to home</a>
</div>`,

	"home": `{{if .Profile}}
<section class="text-center py-12">
    {{if .Profile.AvatarURL}}<img src="{{.Profile.AvatarURL}}" alt="{{.Profile.Name}}" class="w-28 h-28 rounded-full mx-auto mb-6 object-cover">{{end}}
    <h1 class="text-4xl font-bold text-gray-900">{{.Profile.Name}}</h1>
    <p class="mt-2 text-xl text-gray-600">{{.Profile.Headline}}</p>
    <div class="mt-6 max-w-2xl mx-auto text-gray-700 space-y-4">
        {{range paragraphs .Profile.Bio}}<p>{{.}}</p>{{end}}
    </div>
    {{if .Profile.Socials}}
    <div class="mt-6 flex justify-center space-x-4">
        {{range .Profile.Socials}}<a href="{{.URL}}" class="text-indigo-600 hover:text-indigo-800">{{.Label}}</a>{{end}}
    </div>
    {{end}}
</section>

{{if .Profile.Skills}}
<section class="py-8">
    <h2 class="text-2xl font-semibold text-gray-900 mb-6">Skills</h2>
    <div class="grid grid-cols-1 sm:grid-cols-2 gap-4">
        {{range .Profile.Skills}}
        <div>
            <div class="flex justify-between text-sm mb-1">
                <span class="text-gray-700">{{.Name}}</span>
                <span class="text-gray-500">{{.Level}}%</span>
            </div>
            <div class="bg-gray-200 rounded-full h-2">
                <div class="bg-indigo-600 h-2 rounded-full" style="width: {{.Level}}%"></div>
            </div>
        </div>
        {{end}}
    </div>
</section>
{{end}}
{{else}}
<section class="text-center py-20 text-gray-500">This site has not been set up yet.</section>
{{end}}

{{if .Featured}}
<section class="py-8">
    <h2 class="text-2xl font-semibold text-gray-900 mb-6">Featured work</h2>
    <div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6">
        {{range .Featured}}
        <a href="/projects/{{.Slug}}" class="block bg-white rounded-lg shadow-sm hover:shadow-md transition p-5">
            {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" class="rounded mb-4 w-full h-40 object-cover">{{end}}
            <h3 class="font-semibold text-gray-900">{{.Title}}</h3>
            <p class="mt-1 text-sm text-gray-600">{{truncate .Summary 120}}</p>
        </a>
        {{end}}
    </div>
</section>
{{end}}

{{if .Clients}}
<section class="py-8">
    <h2 class="text-2xl font-semibold text-gray-900 mb-6">Kind words</h2>
    <div class="grid grid-cols-1 sm:grid-cols-2 gap-6">
        {{range .Clients}}
        <blockquote class="bg-white rounded-lg shadow-sm p-5">
            <p class="text-gray-700 italic">&ldquo;{{.Quote}}&rdquo;</p>
            <footer class="mt-3 text-sm text-gray-500">{{.Name}}{{if .Company}}, {{.Company}}{{end}}</footer>
        </blockquote>
        {{end}}
    </div>
</section>
{{end}}

{{if .Posts}}
<section class="py-8">
    <h2 class="text-2xl font-semibold text-gray-900 mb-6">Latest writing</h2>
    <ul class="space-y-4">
        {{range .Posts}}
        <li>
            <a href="/blog/{{.Slug}}" class="text-lg text-indigo-600 hover:text-indigo-800">{{.Title}}</a>
            <span class="ml-2 text-sm text-gray-500">{{formatDatePtr .PublishedAt}}</span>
        </li>
        {{end}}
    </ul>
</section>
{{end}}`,

	"projects/list": `<h1 class="text-3xl font-bold text-gray-900 mb-8">Projects{{if .Tag}} <span class="text-lg font-normal text-gray-500">tagged {{.Tag}}</span>{{end}}</h1>
{{if .Projects}}
<div class="grid grid-cols-1 sm:grid-cols-2 gap-6">
    {{range .Projects}}
    <a href="/projects/{{.Slug}}" class="block bg-white rounded-lg shadow-sm hover:shadow-md transition p-6">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}" class="rounded mb-4 w-full h-48 object-cover">{{end}}
        <h2 class="text-xl font-semibold text-gray-900">{{.Title}}</h2>
        <p class="mt-2 text-gray-600">{{truncate .Summary 160}}</p>
        {{if .Tags}}
        <div class="mt-3 flex flex-wrap gap-2">
            {{range .Tags}}<span class="px-2 py-0.5 bg-indigo-50 text-indigo-700 text-xs rounded-full">{{.}}</span>{{end}}
        </div>
        {{end}}
    </a>
    {{end}}
</div>
{{else}}
<p class="text-gray-500">Nothing here yet.</p>
{{end}}`,

	"projects/detail": `<article>
    <h1 class="text-3xl font-bold text-gray-900">{{.Project.Title}}</h1>
    <p class="mt-2 text-lg text-gray-600">{{.Project.Summary}}</p>
    <div class="mt-4 flex flex-wrap gap-3 text-sm">
        {{if .Project.RepoURL}}<a href="{{.Project.RepoURL}}" class="text-indigo-600 hover:text-indigo-800">Source code</a>{{end}}
        {{if .Project.LiveURL}}<a href="{{.Project.LiveURL}}" class="text-indigo-600 hover:text-indigo-800">Live site</a>{{end}}
    </div>
    {{if .Project.ImageURL}}<img src="{{.Project.ImageURL}}" alt="{{.Project.Title}}" class="mt-6 rounded-lg shadow-sm w-full">{{end}}
    <div class="mt-8 text-gray-700 space-y-4">
        {{range paragraphs .Project.Body}}<p>{{.}}</p>{{end}}
    </div>
    {{if .Project.Tags}}
    <div class="mt-8 flex flex-wrap gap-2">
        {{range .Project.Tags}}<a href="/projects?tag={{.}}" class="px-2 py-0.5 bg-indigo-50 text-indigo-700 text-xs rounded-full">{{.}}</a>{{end}}
    </div>
    {{end}}
</article>`,

	"blog/list": `<h1 class="text-3xl font-bold text-gray-900 mb-8">Blog{{if .Tag}} <span class="text-lg font-normal text-gray-500">tagged {{.Tag}}</span>{{end}}</h1>
{{if .Posts}}
<ul class="space-y-8">
    {{range .Posts}}
    <li class="bg-white rounded-lg shadow-sm p-6">
        <a href="/blog/{{.Slug}}" class="text-xl font-semibold text-indigo-600 hover:text-indigo-800">{{.Title}}</a>
        <p class="mt-1 text-sm text-gray-500">{{formatDatePtr .PublishedAt}}</p>
        {{if .Excerpt}}<p class="mt-3 text-gray-600">{{.Excerpt}}</p>{{end}}
    </li>
    {{end}}
</ul>
{{else}}
<p class="text-gray-500">No posts yet.</p>
{{end}}`,

	"blog/detail": `<article class="bg-white rounded-lg shadow-sm p-8">
    <h1 class="text-3xl font-bold text-gray-900">{{.Post.Title}}</h1>
    <p class="mt-2 text-sm text-gray-500">{{formatDatePtr .Post.PublishedAt}}</p>
    {{if .Post.CoverURL}}<img src="{{.Post.CoverURL}}" alt="" class="mt-6 rounded-lg w-full">{{end}}
    <div class="mt-8 text-gray-700 space-y-4">
        {{range paragraphs .Post.Body}}<p>{{.}}</p>{{end}}
    </div>
    {{if .Post.Tags}}
    <div class="mt-8 flex flex-wrap gap-2">
        {{range .Post.Tags}}<a href="/blog?tag={{.}}" class="px-2 py-0.5 bg-indigo-50 text-indigo-700 text-xs rounded-full">{{.}}</a>{{end}}
    </div>
    {{end}}
</article>`,

	"contact": `<div class="max-w-xl mx-auto">
    <h1 class="text-3xl font-bold text-gray-900 mb-6">Get in touch</h1>
    {{if .Sent}}
    <div class="bg-green-50 border border-green-200 text-green-800 rounded-lg p-4 mb-6">Thanks! Your message has been sent.</div>
    {{end}}
    {{if .Error}}
    <div class="bg-red-50 border border-red-200 text-red-800 rounded-lg p-4 mb-6">{{.Error}}</div>
    {{end}}
    <form method="post" action="/contact" class="bg-white rounded-lg shadow-sm p-6 space-y-4">
        <div>
            <label for="name" class="block text-sm font-medium text-gray-700">Name</label>
            <input type="text" name="name" id="name" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
            <input type="email" name="email" id="email" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label for="subject" class="block text-sm font-medium text-gray-700">Subject</label>
            <input type="text" name="subject" id="subject" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label for="message" class="block text-sm font-medium text-gray-700">Message</label>
            <textarea name="message" id="message" rows="5" required class="mt-1 block w-full rounded border-gray-300 shadow-sm"></textarea>
        </div>
        <button type="submit" class="w-full bg-indigo-600 text-white rounded-lg py-2 hover:bg-indigo-700">Send message</button>
    </form>
</div>`,

	"auth/login": `<div class="max-w-sm mx-auto mt-12">
    <h1 class="text-2xl font-bold text-gray-900 text-center mb-6">Sign in</h1>
    {{if .Error}}
    <div class="bg-red-50 border border-red-200 text-red-800 rounded-lg p-3 mb-4 text-sm">{{.Error}}</div>
    {{end}}
    <form method="post" action="/auth/login" class="bg-white rounded-lg shadow-sm p-6 space-y-4">
        <div>
            <label for="email" class="block text-sm font-medium text-gray-700">Email</label>
            <input type="email" name="email" id="email" required autofocus class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label for="password" class="block text-sm font-medium text-gray-700">Password</label>
            <input type="password" name="password" id="password" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <button type="submit" class="w-full bg-indigo-600 text-white rounded-lg py-2 hover:bg-indigo-700">Sign in</button>
    </form>
</div>`,

	"admin/dashboard": `<h1 class="text-2xl font-bold text-gray-900 mb-8">Dashboard</h1>
<div class="grid grid-cols-2 lg:grid-cols-4 gap-4 mb-10">
    <a href="/admin/projects" class="bg-white rounded-lg shadow-sm p-5">
        <p class="text-3xl font-bold text-gray-900">{{.ProjectCount}}</p>
        <p class="text-sm text-gray-500">Projects</p>
    </a>
    <a href="/admin/posts" class="bg-white rounded-lg shadow-sm p-5">
        <p class="text-3xl font-bold text-gray-900">{{.PostCount}}</p>
        <p class="text-sm text-gray-500">Posts</p>
    </a>
    <a href="/admin/clients" class="bg-white rounded-lg shadow-sm p-5">
        <p class="text-3xl font-bold text-gray-900">{{.ClientCount}}</p>
        <p class="text-sm text-gray-500">Clients</p>
    </a>
    <a href="/admin/messages?unread=1" class="bg-white rounded-lg shadow-sm p-5">
        <p class="text-3xl font-bold {{if .UnreadCount}}text-indigo-600{{else}}text-gray-900{{end}}">{{.UnreadCount}}</p>
        <p class="text-sm text-gray-500">Unread messages</p>
    </a>
</div>
{{if .RecentMessages}}
<h2 class="text-lg font-semibold text-gray-900 mb-4">Recent messages</h2>
<ul class="bg-white rounded-lg shadow-sm divide-y">
    {{range .RecentMessages}}
    <li class="p-4">
        <a href="/admin/messages/{{.ID}}" class="font-medium text-indigo-600 hover:text-indigo-800">{{.Name}}</a>
        <span class="ml-2 text-sm text-gray-500">{{formatTime .CreatedAt}}</span>
        <p class="mt-1 text-sm text-gray-600">{{truncate .Body 140}}</p>
    </li>
    {{end}}
</ul>
{{end}}`,

	"admin/profile": `<h1 class="text-2xl font-bold text-gray-900 mb-6">Profile</h1>
{{if .Saved}}
<div class="bg-green-50 border border-green-200 text-green-800 rounded-lg p-3 mb-4 text-sm">Profile saved.</div>
{{end}}
<form method="post" action="/admin/profile" class="bg-white rounded-lg shadow-sm p-6 space-y-4 max-w-2xl">
    <div>
        <label class="block text-sm font-medium text-gray-700">Name</label>
        <input type="text" name="name" value="{{.Profile.Name}}" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Headline</label>
        <input type="text" name="headline" value="{{.Profile.Headline}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Bio</label>
        <textarea name="bio" rows="6" class="mt-1 block w-full rounded border-gray-300 shadow-sm">{{.Profile.Bio}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Avatar URL</label>
        <input type="text" name="avatar_url" value="{{.Profile.AvatarURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Skills (one per line, Name:Level)</label>
        <textarea name="skills" rows="4" class="mt-1 block w-full rounded border-gray-300 shadow-sm font-mono text-sm">{{range .Profile.Skills}}{{.Name}}:{{.Level}}
{{end}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Social links (one per line, Label|URL)</label>
        <textarea name="socials" rows="3" class="mt-1 block w-full rounded border-gray-300 shadow-sm font-mono text-sm">{{range .Profile.Socials}}{{.Label}}|{{.URL}}
{{end}}</textarea>
    </div>
    <button type="submit" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">Save</button>
</form>`,

	"admin/projects": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold text-gray-900">Projects ({{.Total}})</h1>
    <a href="/admin/projects/new" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">New project</a>
</div>
<div class="bg-white rounded-lg shadow-sm overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Title</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Slug</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Featured</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Updated</th>
                <th class="px-4 py-3"></th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Projects}}
            <tr>
                <td class="px-4 py-3"><a href="/admin/projects/{{.ID}}" class="text-indigo-600 hover:text-indigo-800">{{.Title}}</a></td>
                <td class="px-4 py-3 text-sm text-gray-500">{{.Slug}}</td>
                <td class="px-4 py-3 text-sm">{{if .Featured}}Yes{{else}}-{{end}}</td>
                <td class="px-4 py-3 text-sm text-gray-500">{{formatTime .UpdatedAt}}</td>
                <td class="px-4 py-3 text-right">
                    <form method="post" action="/admin/projects/{{.ID}}/delete" onsubmit="return confirm('Delete this project?')">
                        <button type="submit" class="text-red-600 hover:text-red-800 text-sm">Delete</button>
                    </form>
                </td>
            </tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/project_form": `<h1 class="text-2xl font-bold text-gray-900 mb-6">{{if .Project.ID}}Edit project{{else}}New project{{end}}</h1>
<form method="post" class="bg-white rounded-lg shadow-sm p-6 space-y-4 max-w-2xl">
    <div>
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input type="text" name="title" value="{{.Project.Title}}" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Slug (blank to derive from title)</label>
        <input type="text" name="slug" value="{{.Project.Slug}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Summary</label>
        <input type="text" name="summary" value="{{.Project.Summary}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Body</label>
        <textarea name="body" rows="8" class="mt-1 block w-full rounded border-gray-300 shadow-sm">{{.Project.Body}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Image URL</label>
        <input type="text" name="image_url" value="{{.Project.ImageURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Repository URL</label>
            <input type="text" name="repo_url" value="{{.Project.RepoURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Live URL</label>
            <input type="text" name="live_url" value="{{.Project.LiveURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Tags (comma separated)</label>
        <input type="text" name="tags" value="{{.Tags}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div class="flex items-center space-x-6">
        <label class="flex items-center text-sm text-gray-700">
            <input type="checkbox" name="featured" {{if .Project.Featured}}checked{{end}} class="mr-2 rounded border-gray-300"> Featured
        </label>
        <label class="flex items-center text-sm text-gray-700">
            Sort order <input type="number" name="sort_order" value="{{.Project.SortOrder}}" class="ml-2 w-20 rounded border-gray-300 shadow-sm">
        </label>
    </div>
    <div class="flex space-x-3">
        <button type="submit" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">Save</button>
        <a href="/admin/projects" class="px-4 py-2 text-gray-600 hover:text-gray-900">Cancel</a>
    </div>
</form>`,

	"admin/clients": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold text-gray-900">Clients ({{.Total}})</h1>
    <a href="/admin/clients/new" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">New client</a>
</div>
<div class="bg-white rounded-lg shadow-sm overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Name</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Company</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Quote</th>
                <th class="px-4 py-3"></th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Clients}}
            <tr>
                <td class="px-4 py-3"><a href="/admin/clients/{{.ID}}" class="text-indigo-600 hover:text-indigo-800">{{.Name}}</a></td>
                <td class="px-4 py-3 text-sm text-gray-500">{{.Company}}</td>
                <td class="px-4 py-3 text-sm text-gray-600">{{truncate .Quote 80}}</td>
                <td class="px-4 py-3 text-right">
                    <form method="post" action="/admin/clients/{{.ID}}/delete" onsubmit="return confirm('Delete this client?')">
                        <button type="submit" class="text-red-600 hover:text-red-800 text-sm">Delete</button>
                    </form>
                </td>
            </tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/client_form": `<h1 class="text-2xl font-bold text-gray-900 mb-6">{{if .Client.ID}}Edit client{{else}}New client{{end}}</h1>
<form method="post" class="bg-white rounded-lg shadow-sm p-6 space-y-4 max-w-2xl">
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Name</label>
            <input type="text" name="name" value="{{.Client.Name}}" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Company</label>
            <input type="text" name="company" value="{{.Client.Company}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Quote</label>
        <textarea name="quote" rows="4" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">{{.Client.Quote}}</textarea>
    </div>
    <div class="grid grid-cols-2 gap-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Avatar URL</label>
            <input type="text" name="avatar_url" value="{{.Client.AvatarURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Website</label>
            <input type="text" name="website" value="{{.Client.Website}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
        </div>
    </div>
    <label class="flex items-center text-sm text-gray-700">
        Sort order <input type="number" name="sort_order" value="{{.Client.SortOrder}}" class="ml-2 w-20 rounded border-gray-300 shadow-sm">
    </label>
    <div class="flex space-x-3">
        <button type="submit" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">Save</button>
        <a href="/admin/clients" class="px-4 py-2 text-gray-600 hover:text-gray-900">Cancel</a>
    </div>
</form>`,

	"admin/posts": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold text-gray-900">Posts ({{.Total}})</h1>
    <a href="/admin/posts/new" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">New post</a>
</div>
<div class="bg-white rounded-lg shadow-sm overflow-hidden">
    <table class="min-w-full divide-y divide-gray-200">
        <thead class="bg-gray-50">
            <tr>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Title</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Published</th>
                <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Updated</th>
                <th class="px-4 py-3"></th>
            </tr>
        </thead>
        <tbody class="divide-y divide-gray-200">
            {{range .Posts}}
            <tr>
                <td class="px-4 py-3"><a href="/admin/posts/{{.ID}}" class="text-indigo-600 hover:text-indigo-800">{{.Title}}</a></td>
                <td class="px-4 py-3 text-sm">
                    {{if .Published}}<span class="px-2 py-0.5 bg-green-100 text-green-800 text-xs rounded-full">Published</span>
                    {{else}}<span class="px-2 py-0.5 bg-yellow-100 text-yellow-800 text-xs rounded-full">Draft</span>{{end}}
                </td>
                <td class="px-4 py-3 text-sm text-gray-500">{{formatDatePtr .PublishedAt}}</td>
                <td class="px-4 py-3 text-sm text-gray-500">{{formatTime .UpdatedAt}}</td>
                <td class="px-4 py-3 text-right">
                    <form method="post" action="/admin/posts/{{.ID}}/delete" onsubmit="return confirm('Delete this post?')">
                        <button type="submit" class="text-red-600 hover:text-red-800 text-sm">Delete</button>
                    </form>
                </td>
            </tr>
            {{end}}
        </tbody>
    </table>
</div>`,

	"admin/post_form": `<h1 class="text-2xl font-bold text-gray-900 mb-6">{{if .Post.ID}}Edit post{{else}}New post{{end}}</h1>
<form method="post" class="bg-white rounded-lg shadow-sm p-6 space-y-4 max-w-2xl">
    <div>
        <label class="block text-sm font-medium text-gray-700">Title</label>
        <input type="text" name="title" value="{{.Post.Title}}" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Slug (blank to derive from title)</label>
        <input type="text" name="slug" value="{{.Post.Slug}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Excerpt</label>
        <input type="text" name="excerpt" value="{{.Post.Excerpt}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Body</label>
        <textarea name="body" rows="12" required class="mt-1 block w-full rounded border-gray-300 shadow-sm">{{.Post.Body}}</textarea>
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Cover URL</label>
        <input type="text" name="cover_url" value="{{.Post.CoverURL}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <div>
        <label class="block text-sm font-medium text-gray-700">Tags (comma separated)</label>
        <input type="text" name="tags" value="{{.Tags}}" class="mt-1 block w-full rounded border-gray-300 shadow-sm">
    </div>
    <label class="flex items-center text-sm text-gray-700">
        <input type="checkbox" name="published" {{if .Post.Published}}checked{{end}} class="mr-2 rounded border-gray-300"> Published
    </label>
    <div class="flex space-x-3">
        <button type="submit" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700">Save</button>
        <a href="/admin/posts" class="px-4 py-2 text-gray-600 hover:text-gray-900">Cancel</a>
    </div>
</form>`,

	"admin/messages": `<div class="flex justify-between items-center mb-6">
    <h1 class="text-2xl font-bold text-gray-900">Messages ({{.Total}})</h1>
    <div class="text-sm space-x-3">
        <a href="/admin/messages" class="{{if .UnreadOnly}}text-gray-600{{else}}text-indigo-600 font-medium{{end}}">All</a>
        <a href="/admin/messages?unread=1" class="{{if .UnreadOnly}}text-indigo-600 font-medium{{else}}text-gray-600{{end}}">Unread</a>
    </div>
</div>
{{if .Messages}}
<ul class="bg-white rounded-lg shadow-sm divide-y">
    {{range .Messages}}
    <li class="p-4 {{if not .Read}}bg-indigo-50{{end}}">
        <div class="flex justify-between">
            <a href="/admin/messages/{{.ID}}" class="font-medium text-indigo-600 hover:text-indigo-800">{{.Name}} <span class="text-gray-500 font-normal">&lt;{{.Email}}&gt;</span></a>
            <span class="text-sm text-gray-500">{{formatTime .CreatedAt}}</span>
        </div>
        {{if .Subject}}<p class="mt-1 text-sm font-medium text-gray-700">{{.Subject}}</p>{{end}}
        <p class="mt-1 text-sm text-gray-600">{{truncate .Body 160}}</p>
    </li>
    {{end}}
</ul>
{{else}}
<p class="text-gray-500">No messages.</p>
{{end}}`,

	"admin/message_detail": `<a href="/admin/messages" class="text-sm text-indigo-600 hover:text-indigo-800">&larr; Back to messages</a>
<div class="mt-4 bg-white rounded-lg shadow-sm p-6 max-w-2xl">
    <div class="flex justify-between items-start">
        <div>
            <h1 class="text-xl font-bold text-gray-900">{{.Message.Name}}</h1>
            <p class="text-sm text-gray-500">{{.Message.Email}} &middot; {{formatTime .Message.CreatedAt}}</p>
        </div>
        <form method="post" action="/admin/messages/{{.Message.ID}}/delete" onsubmit="return confirm('Delete this message?')">
            <button type="submit" class="text-red-600 hover:text-red-800 text-sm">Delete</button>
        </form>
    </div>
    {{if .Message.Subject}}<h2 class="mt-4 font-medium text-gray-800">{{.Message.Subject}}</h2>{{end}}
    <div class="mt-4 text-gray-700 space-y-4">
        {{range paragraphs .Message.Body}}<p>{{.}}</p>{{end}}
    </div>
    <div class="mt-6">
        <a href="mailto:{{.Message.Email}}" class="bg-indigo-600 text-white rounded-lg px-4 py-2 hover:bg-indigo-700 inline-block">Reply by email</a>
    </div>
</div>`,
}
