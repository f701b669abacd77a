package source

// SampleDocument is a small page with typical accessibility defects: an image
// without alt text, unlabelled form controls and vague button text.
const SampleDocument = `<!DOCTYPE html>
<html lang="en">
<head>
    <title>Sample Page</title>
</head>
<body>
    <header>
        <h1>Welcome to our site</h1>
        <nav>
            <a href="#home">Home</a>
            <a href="#about">About</a>
            <a href="#contact">Contact</a>
        </nav>
    </header>
    
    <main>
        <section>
            <h2>About Us</h2>
            <img src="team-photo.jpg" width="300" height="200">
            <p>We are a passionate team dedicated to creating amazing experiences.</p>
        </section>
        
        <section>
            <h3>Contact Form</h3>
            <form>
                <input type="text" placeholder="Your name">
                <input type="email" placeholder="Your email">
                <textarea placeholder="Your message"></textarea>
                <button>Submit</button>
            </form>
        </section>
        
        <div>
            <button>Click here</button>
            <button>Read more</button>
        </div>
    </main>
    
    <footer>
        <p>&copy; 2024 Our Company</p>
    </footer>
</body>
</html>`
