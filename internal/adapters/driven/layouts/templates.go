package layouts

import "github.com/daisy-days/daisyd/internal/core/domain"

// allTemplates holds the ten compiled-in layout templates.
// Section markup uses daisyUI classes; {{title}} is replaced with the
// HTML-escaped page title at generation time.
var allTemplates = []domain.LayoutTemplate{
	{
		Archetype:    domain.ArchetypeSaas,
		DefaultTitle: "My App",
		RootClasses:  []string{"min-h-screen", "bg-base-100"},
		Sections:     []string{"navbar", "hero", "features", "footer"},
		Slots: map[string]string{
			"navbar": `<div class="navbar bg-base-100 sticky top-0 z-50 border-b border-base-200">
  <div class="flex-1"><a class="btn btn-ghost text-xl font-bold">{{title}}</a></div>
  <div class="flex-none gap-2">
    <ul class="menu menu-horizontal px-1 hidden sm:flex"><li><a>Features</a></li><li><a>Pricing</a></li><li><a>Contact</a></li></ul>
    <button class="btn btn-primary">Get Started</button>
  </div>
</div>`,
			"hero": `<div class="hero min-h-[80vh] bg-base-200">
  <div class="hero-content text-center">
    <div class="max-w-2xl">
      <h1 class="text-5xl font-extrabold tracking-tight">Build faster with <span class="text-primary">{{title}}</span></h1>
      <p class="py-6 text-xl text-base-content/80">The ultimate scaffolding engine for modern web applications.</p>
      <button class="btn btn-primary btn-lg">Start Free Trial</button>
      <button class="btn btn-ghost btn-lg ml-2">Read Docs</button>
    </div>
  </div>
</div>`,
			"features": `<div class="py-24 bg-base-100">
  <div class="container mx-auto px-4">
    <h2 class="text-3xl font-bold text-center mb-12">Everything you need</h2>
    <div class="grid grid-cols-1 md:grid-cols-3 gap-8">
      <div class="card bg-base-200 shadow-sm border border-base-300"><div class="card-body"><h3 class="card-title">Lightning Fast</h3><p>Optimized for speed and performance out of the box.</p></div></div>
      <div class="card bg-base-200 shadow-sm border border-base-300"><div class="card-body"><h3 class="card-title">Secure by Default</h3><p>Bank-grade security standards applied automatically.</p></div></div>
      <div class="card bg-base-200 shadow-sm border border-base-300"><div class="card-body"><h3 class="card-title">Themable</h3><p>Change the look and feel in seconds with daisyUI themes.</p></div></div>
    </div>
  </div>
</div>`,
			"footer": `<footer class="footer p-10 bg-base-300 text-base-content">
  <nav><header class="footer-title">Services</header><a class="link link-hover">Branding</a><a class="link link-hover">Design</a></nav>
  <nav><header class="footer-title">Company</header><a class="link link-hover">About us</a><a class="link link-hover">Contact</a></nav>
  <nav><header class="footer-title">Legal</header><a class="link link-hover">Terms of use</a><a class="link link-hover">Privacy policy</a></nav>
</footer>`,
		},
	},
	{
		Archetype:    domain.ArchetypeBlog,
		DefaultTitle: "My Blog",
		RootClasses:  []string{"min-h-screen", "bg-base-100"},
		Sections:     []string{"navbar", "featured", "posts"},
		Slots: map[string]string{
			"navbar": `<div class="navbar bg-base-100 border-b border-base-200">
  <div class="container mx-auto">
    <div class="flex-1"><a class="btn btn-ghost text-2xl font-serif">{{title}}</a></div>
  </div>
</div>`,
			"featured": `<div class="container mx-auto px-4 py-12">
  <div class="card lg:card-side bg-base-200 shadow-xl mb-16">
    <figure class="lg:w-1/2"><img src="https://picsum.photos/800/600" class="h-full object-cover" alt="Featured" /></figure>
    <div class="card-body lg:w-1/2 justify-center">
      <h2 class="card-title text-4xl mb-4 font-serif">The Future of AI Design</h2>
      <p class="text-lg">How artificial intelligence is reshaping the way we build interfaces.</p>
      <div class="card-actions justify-start mt-4"><button class="btn btn-primary">Read Article</button></div>
    </div>
  </div>
</div>`,
			"posts": `<div class="container mx-auto px-4 pb-12">
  <div class="flex flex-col lg:flex-row gap-12">
    <div class="lg:w-2/3">
      <h3 class="text-2xl font-bold mb-6 border-b border-base-300 pb-2">Latest Stories</h3>
      <div class="flex flex-col gap-8">
        <div class="flex gap-6 items-start">
          <div><div class="badge badge-ghost mb-2">Tech</div><h4 class="text-xl font-bold hover:text-primary cursor-pointer">Designing in the Open</h4><p class="text-base-content/70 mt-2">A deep dive into component systems.</p></div>
        </div>
        <div class="flex gap-6 items-start">
          <div><div class="badge badge-ghost mb-2">Lifestyle</div><h4 class="text-xl font-bold hover:text-primary cursor-pointer">Digital Minimalism</h4><p class="text-base-content/70 mt-2">Reclaiming your attention span.</p></div>
        </div>
      </div>
    </div>
    <div class="lg:w-1/3">
      <div class="card bg-base-200 p-6 mb-6">
        <h3 class="font-bold text-lg mb-4">Newsletter</h3>
        <div class="join w-full"><input class="input input-bordered join-item w-full" placeholder="Email" /><button class="btn btn-primary join-item">Subscribe</button></div>
      </div>
      <div class="flex flex-wrap gap-2"><div class="badge badge-outline p-3">Technology</div><div class="badge badge-outline p-3">Design</div><div class="badge badge-outline p-3">Culture</div></div>
    </div>
  </div>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeSocial,
		DefaultTitle: "My Feed",
		RootClasses:  []string{"min-h-screen", "bg-base-100", "flex"},
		Sections:     []string{"sidebar", "feed"},
		Slots: map[string]string{
			"sidebar": `<div class="w-64 hidden lg:block p-4 border-r border-base-200">
  <div class="text-2xl font-bold text-primary p-4 mb-4">{{title}}</div>
  <ul class="menu w-full text-lg"><li><a class="active">Home</a></li><li><a>Notifications</a></li><li><a>Messages</a></li><li><a>Profile</a></li></ul>
  <button class="btn btn-primary w-full rounded-full mt-8">Post</button>
</div>`,
			"feed": `<div class="w-full lg:max-w-2xl border-r border-base-200 min-h-screen">
  <div class="sticky top-0 bg-base-100/80 backdrop-blur z-20 border-b border-base-200 p-4 font-bold text-xl">Home</div>
  <div class="p-4 border-b border-base-200 flex gap-4">
    <div class="avatar placeholder"><div class="bg-neutral text-neutral-content w-12 rounded-full"><span>U</span></div></div>
    <div class="w-full">
      <textarea class="textarea textarea-ghost w-full text-lg resize-none" placeholder="What is happening?"></textarea>
      <div class="flex justify-end"><button class="btn btn-primary btn-sm rounded-full">Post</button></div>
    </div>
  </div>
  <div class="p-4 border-b border-base-200 hover:bg-base-200/50 cursor-pointer transition">
    <div class="flex gap-4">
      <div class="avatar placeholder"><div class="bg-primary text-primary-content w-12 rounded-full"><span>J</span></div></div>
      <div>
        <div class="flex gap-2 items-center"><span class="font-bold">Jane Doe</span> <span class="text-sm opacity-50">@janedoe</span></div>
        <p class="mt-1">Just shipped a new update!</p>
      </div>
    </div>
  </div>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeKanban,
		DefaultTitle: "Project Board",
		RootClasses:  []string{"h-screen", "flex", "flex-col", "bg-base-200"},
		Sections:     []string{"navbar", "board"},
		Slots: map[string]string{
			"navbar": `<div class="navbar bg-base-100 shadow-sm px-4">
  <div class="flex-1"><h1 class="text-xl font-bold">{{title}}</h1></div>
  <div class="flex-none gap-2"><button class="btn btn-primary btn-sm">Share</button></div>
</div>`,
			"board": `<div class="flex-1 overflow-x-auto p-6">
  <div class="flex gap-6 h-full">
    <div class="w-80 shrink-0 flex flex-col gap-3">
      <div class="flex justify-between items-center px-1"><h3 class="font-bold uppercase text-sm opacity-70">To Do</h3><span class="badge badge-sm">3</span></div>
      <div class="card bg-base-100 shadow-sm p-4 cursor-pointer hover:shadow-md"><div class="badge badge-warning text-xs mb-2">Design</div><p class="font-semibold">Create high-fidelity mockups</p></div>
      <button class="btn btn-ghost btn-block text-base-content/50">+ Add Task</button>
    </div>
    <div class="w-80 shrink-0 flex flex-col gap-3">
      <div class="flex justify-between items-center px-1"><h3 class="font-bold uppercase text-sm opacity-70">In Progress</h3><span class="badge badge-sm">1</span></div>
      <div class="card bg-base-100 shadow-sm p-4 cursor-pointer hover:shadow-md"><div class="badge badge-info text-xs mb-2">Dev</div><p class="font-semibold">Implement Authentication</p><progress class="progress progress-primary w-full mt-2" value="40" max="100"></progress></div>
    </div>
    <div class="w-80 shrink-0 flex flex-col gap-3">
      <div class="flex justify-between items-center px-1"><h3 class="font-bold uppercase text-sm opacity-70">Done</h3><span class="badge badge-sm">2</span></div>
      <div class="card bg-base-100 shadow-sm p-4 opacity-60"><p class="font-semibold line-through">Setup Repo</p></div>
    </div>
  </div>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeInbox,
		DefaultTitle: "Mail",
		RootClasses:  []string{"h-screen", "flex", "bg-base-100"},
		Sections:     []string{"folders", "messages", "reading"},
		Slots: map[string]string{
			"folders": `<div class="w-64 border-r border-base-200 flex flex-col">
  <div class="p-4 font-bold text-xl"><span class="badge badge-primary badge-lg mr-2">M</span>{{title}}</div>
  <button class="btn btn-primary mx-4">Compose</button>
  <ul class="menu flex-1 p-2"><li><a class="active">Inbox <span class="badge">4</span></a></li><li><a>Sent</a></li><li><a>Drafts</a></li></ul>
</div>`,
			"messages": `<div class="w-80 border-r border-base-200 overflow-y-auto">
  <div class="p-2"><input class="input input-bordered w-full" placeholder="Search" /></div>
  <div class="p-4 hover:bg-base-200 cursor-pointer border-b border-base-200"><span class="font-bold">Sender</span><div class="font-semibold truncate">Subject line</div><div class="text-sm opacity-60 truncate">Preview text...</div></div>
</div>`,
			"reading": `<div class="flex-1 flex flex-col">
  <div class="p-6 border-b border-base-200"><h2 class="text-2xl font-bold">Email Subject</h2><div class="mt-2 text-sm">From: <span class="font-bold">sender@example.com</span></div></div>
  <div class="p-6 flex-1"><p>Email content goes here...</p></div>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeProfile,
		DefaultTitle: "Settings",
		RootClasses:  []string{"min-h-screen", "bg-base-200", "p-4", "md:p-8"},
		Sections:     []string{"heading", "settings"},
		Slots: map[string]string{
			"heading": `<div class="max-w-4xl mx-auto"><h1 class="text-3xl font-bold mb-8">{{title}}</h1></div>`,
			"settings": `<div class="max-w-4xl mx-auto">
  <div class="flex flex-col md:flex-row gap-6">
    <ul class="menu bg-base-100 rounded-box w-full md:w-64 shadow-sm"><li><a class="active">General</a></li><li><a>Account</a></li><li><a>Notifications</a></li><li><a class="text-error">Danger Zone</a></li></ul>
    <div class="flex-1 card bg-base-100 shadow-sm">
      <div class="card-body">
        <h2 class="card-title mb-4">Profile Information</h2>
        <div class="flex items-center gap-4 mb-6"><div class="avatar placeholder"><div class="bg-neutral text-neutral-content rounded-full w-24"><span class="text-3xl">U</span></div></div><button class="btn btn-sm btn-outline">Change Avatar</button></div>
        <div class="form-control mb-4"><label class="label">Name</label><input class="input input-bordered" value="User Name" /></div>
        <div class="form-control mb-4"><label class="label">Email</label><input class="input input-bordered" value="user@example.com" /></div>
        <div class="form-control mb-4"><label class="label">Bio</label><textarea class="textarea textarea-bordered">Bio here...</textarea></div>
        <button class="btn btn-primary">Save Changes</button>
      </div>
    </div>
  </div>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeDocs,
		DefaultTitle: "Documentation",
		RootClasses:  []string{"drawer", "lg:drawer-open"},
		Sections:     []string{"toggle", "content", "sidebar"},
		Slots: map[string]string{
			"toggle": `<input id="docs-drawer" type="checkbox" class="drawer-toggle" />`,
			"content": `<div class="drawer-content">
  <div class="navbar bg-base-100 border-b border-base-200 lg:hidden"><label for="docs-drawer" class="btn btn-ghost">Menu</label><span class="font-bold">{{title}}</span></div>
  <div class="p-8 max-w-4xl mx-auto">
    <div class="text-sm breadcrumbs mb-4"><ul><li><a>Docs</a></li><li>Installation</li></ul></div>
    <h1 class="text-4xl font-bold mb-6">Installation</h1>
    <p class="mb-4 text-lg">Get started in minutes.</p>
    <div class="mockup-code mb-6"><pre data-prefix="$"><code>npm install package-name</code></pre></div>
    <h2 class="text-2xl font-bold mt-8 mb-4">Configuration</h2>
    <p>Add to your config file.</p>
    <div class="alert alert-info mt-8"><span>Requires Node.js 18+</span></div>
  </div>
</div>`,
			"sidebar": `<div class="drawer-side border-r border-base-200"><label for="docs-drawer" class="drawer-overlay"></label>
  <ul class="menu p-4 w-80 min-h-full bg-base-100"><li class="menu-title">{{title}}</li><li><a class="active">Installation</a></li><li><a>Usage</a></li><li><a>Components</a></li></ul>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeDashboard,
		DefaultTitle: "Admin",
		RootClasses:  []string{"drawer", "lg:drawer-open"},
		Sections:     []string{"toggle", "main", "sidebar"},
		Slots: map[string]string{
			"toggle": `<input id="dash-drawer" type="checkbox" class="drawer-toggle" />`,
			"main": `<div class="drawer-content flex flex-col">
  <div class="navbar bg-base-300"><div class="lg:hidden"><label for="dash-drawer" class="btn btn-ghost">Menu</label></div><div class="flex-1 font-bold text-xl px-4">{{title}}</div></div>
  <div class="p-6">
    <h2 class="text-2xl font-bold mb-6">Dashboard</h2>
    <div class="stats shadow mb-6 w-full">
      <div class="stat"><div class="stat-title">Users</div><div class="stat-value">31K</div><div class="stat-desc">22% more</div></div>
      <div class="stat"><div class="stat-title">Revenue</div><div class="stat-value">$12.5K</div><div class="stat-desc">14% more</div></div>
      <div class="stat"><div class="stat-title">Orders</div><div class="stat-value">1,234</div><div class="stat-desc">3% less</div></div>
    </div>
    <div class="card bg-base-100 shadow"><div class="card-body"><h3 class="card-title">Recent Activity</h3><p>Activity items go here...</p></div></div>
  </div>
</div>`,
			"sidebar": `<div class="drawer-side"><label for="dash-drawer" class="drawer-overlay"></label>
  <ul class="menu p-4 w-80 min-h-full bg-base-200"><li class="menu-title">Menu</li><li><a class="active">Overview</a></li><li><a>Analytics</a></li><li><a>Settings</a></li></ul>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeAuth,
		DefaultTitle: "Login",
		RootClasses:  []string{"hero", "min-h-screen", "bg-base-200"},
		Sections:     []string{"card"},
		Slots: map[string]string{
			"card": `<div class="card shrink-0 w-full max-w-sm shadow-2xl bg-base-100">
  <form class="card-body">
    <h1 class="text-2xl font-bold text-center">{{title}}</h1>
    <div class="form-control"><label class="label"><span class="label-text">Email</span></label><input type="email" class="input input-bordered" required /></div>
    <div class="form-control"><label class="label"><span class="label-text">Password</span></label><input type="password" class="input input-bordered" required /><label class="label"><a class="label-text-alt link link-hover">Forgot password?</a></label></div>
    <div class="form-control mt-6"><button class="btn btn-primary">Login</button></div>
    <div class="divider">OR</div>
    <button class="btn btn-outline">Sign up</button>
  </form>
</div>`,
		},
	},
	{
		Archetype:    domain.ArchetypeStore,
		DefaultTitle: "My Store",
		RootClasses:  []string{"min-h-screen", "bg-base-100"},
		Sections:     []string{"navbar", "hero", "products"},
		Slots: map[string]string{
			"navbar": `<div class="navbar bg-base-100 border-b border-base-200">
  <div class="flex-1"><a class="btn btn-ghost text-xl">{{title}}</a></div>
  <div class="flex-none"><button class="btn btn-ghost btn-circle"><span class="indicator">Cart<span class="badge badge-sm indicator-item">3</span></span></button></div>
</div>`,
			"hero": `<div class="hero bg-base-200 py-16">
  <div class="hero-content text-center"><div><h1 class="text-5xl font-bold">{{title}}</h1><p class="py-6">Discover amazing products</p><button class="btn btn-primary">Shop Now</button></div></div>
</div>`,
			"products": `<div class="container mx-auto p-8">
  <h2 class="text-2xl font-bold mb-6">Featured Products</h2>
  <div class="grid grid-cols-1 md:grid-cols-3 lg:grid-cols-4 gap-6">
    <div class="card bg-base-100 shadow"><figure><img src="https://picsum.photos/400/300" alt="Product" /></figure><div class="card-body"><h3 class="card-title">Product</h3><p>$99.00</p><button class="btn btn-primary btn-sm">Add to Cart</button></div></div>
  </div>
</div>`,
		},
	},
}
